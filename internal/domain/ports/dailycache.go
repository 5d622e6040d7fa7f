// Package ports defines interfaces between the domain and infrastructure.
package ports

import (
	"context"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// DailyCache persists one day's prediction assignment. At most one date is
// retained: saving replaces the previous snapshot wholesale.
//
// Implementations are not expected to coordinate between processes. A
// concurrent writer wins last; since the assignment is a pure function of
// the date and catalog, racing writers store identical data.
type DailyCache interface {
	// Load returns the stored assignment, or (nil, nil) when nothing is
	// stored.
	Load(ctx context.Context) (*entities.DailyAssignment, error)

	// Save stores the assignment, replacing any previously stored date.
	Save(ctx context.Context, assignment *entities.DailyAssignment) error

	// Close releases the underlying storage.
	Close() error
}
