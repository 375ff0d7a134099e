package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"turnero/internal/domain/catalog"
)

//go:embed catalogs.yaml
var defaultCatalogs []byte

// CatalogSeed is one entry of a seed file.
type CatalogSeed struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Active *bool  `yaml:"active,omitempty"`
}

// CatalogFile is the layout of a catalog seed file, one list per catalog.
type CatalogFile struct {
	Levels         []CatalogSeed `yaml:"levels"`
	Subjects       []CatalogSeed `yaml:"subjects"`
	Municipalities []CatalogSeed `yaml:"municipalities"`
}

func (f *CatalogFile) byKind() map[catalog.Kind][]CatalogSeed {
	return map[catalog.Kind][]CatalogSeed{
		catalog.KindLevel:        f.Levels,
		catalog.KindSubject:      f.Subjects,
		catalog.KindMunicipality: f.Municipalities,
	}
}

// DefaultCatalogFile returns the catalogs bundled with the binary.
func DefaultCatalogFile() (*CatalogFile, error) {
	return ParseCatalogFile(defaultCatalogs)
}

// LoadCatalogFile reads a seed file from disk.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseCatalogFile(data)
}

func ParseCatalogFile(data []byte) (*CatalogFile, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// SeedCatalogs upserts every entry of f and returns how many were written.
// Entries are matched by (catalog, key), so reseeding only refreshes names.
func SeedCatalogs(ctx context.Context, repo catalog.Repository, f *CatalogFile) (int, error) {
	written := 0
	for _, kind := range catalog.AllKinds() {
		for _, seed := range f.byKind()[kind] {
			entry, err := catalog.NewEntry(kind, seed.Key, seed.Name)
			if err != nil {
				return written, fmt.Errorf("invalid %s entry %q: %w", kind, seed.Key, err)
			}
			if seed.Active != nil && !*seed.Active {
				if err := entry.Update(entry.Name(), false); err != nil {
					return written, err
				}
			}
			if err := repo.Upsert(ctx, entry); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
