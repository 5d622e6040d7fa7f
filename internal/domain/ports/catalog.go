package ports

import "github.com/ersonp/zodi-core/internal/domain/entities"

// CatalogLoader loads the static content catalog once at startup.
// A missing or corrupt catalog is reported as an error; the composition
// root falls back to the built-in content rather than aborting.
type CatalogLoader interface {
	Load() (*entities.Catalog, error)
}
