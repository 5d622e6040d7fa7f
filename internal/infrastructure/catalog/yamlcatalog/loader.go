// Package yamlcatalog loads the static content catalog from a YAML file.
package yamlcatalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// ErrNotFound is returned when the catalog file does not exist. Callers
// fall back to the built-in content in that case.
var ErrNotFound = errors.New("content catalog not found")

// catalogFile is the on-disk YAML shape of the catalog.
type catalogFile struct {
	// Signs maps Russian sign names to per-category text lists.
	Signs map[string]map[string][]string `yaml:"signs"`
	// Universal maps category identifiers to sign-agnostic text lists.
	Universal map[string][]string `yaml:"universal"`
	// Matrix maps sign-name pairs to base compatibility scores.
	Matrix map[string]map[string]int `yaml:"matrix"`
}

// Loader reads a content catalog from a single YAML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given catalog file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the catalog file. Unknown sign or category keys are skipped:
// they are boundary input, and serving must not fail because of them.
func (l *Loader) Load() (*entities.Catalog, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	catalog := &entities.Catalog{
		Personal:  make(map[entities.Sign]map[entities.Category][]string),
		Universal: make(map[entities.Category][]string),
	}

	for signName, pools := range file.Signs {
		sign, ok := entities.ParseSign(signName)
		if !ok {
			continue
		}
		for categoryName, texts := range pools {
			category, ok := entities.ParseCategory(categoryName)
			if !ok || len(texts) == 0 {
				continue
			}
			if catalog.Personal[sign] == nil {
				catalog.Personal[sign] = make(map[entities.Category][]string)
			}
			catalog.Personal[sign][category] = texts
		}
	}

	for categoryName, texts := range file.Universal {
		category, ok := entities.ParseCategory(categoryName)
		if !ok || len(texts) == 0 {
			continue
		}
		catalog.Universal[category] = texts
	}

	if len(file.Matrix) > 0 {
		catalog.BaseScores = make(map[entities.Sign]map[entities.Sign]int)
		for name1, row := range file.Matrix {
			sign1, ok := entities.ParseSign(name1)
			if !ok {
				continue
			}
			for name2, score := range row {
				sign2, ok := entities.ParseSign(name2)
				if !ok {
					continue
				}
				if catalog.BaseScores[sign1] == nil {
					catalog.BaseScores[sign1] = make(map[entities.Sign]int)
				}
				catalog.BaseScores[sign1][sign2] = score
			}
		}
	}

	return catalog, nil
}
