package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/domain/catalog"
	"turnero/internal/infrastructure/persistence/testdb"
	"turnero/internal/infrastructure/repository"
)

func TestSeedCatalogsFromFile(t *testing.T) {
	repo := repository.NewCatalogRepository(testdb.Open(t))
	path := filepath.Join(t.TempDir(), "catalogs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
levels:
  - key: primaria
    name: Primaria
municipalities:
  - key: saltillo
    name: Saltillo
  - key: ramos
    name: Ramos Arizpe
`), 0o600))

	var out bytes.Buffer
	written, err := seedCatalogs(context.Background(), repo, path, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, written)
	assert.Contains(t, out.String(), "Seeded 3 catalog entries")

	municipalities, err := repo.List(context.Background(), catalog.KindMunicipality, true)
	require.NoError(t, err)
	assert.Len(t, municipalities, 2)

	// Reseeding matches by key.
	_, err = seedCatalogs(context.Background(), repo, path, &out)
	require.NoError(t, err)
	municipalities, err = repo.List(context.Background(), catalog.KindMunicipality, false)
	require.NoError(t, err)
	assert.Len(t, municipalities, 2)
}

func TestSeedCatalogsDefaults(t *testing.T) {
	repo := repository.NewCatalogRepository(testdb.Open(t))

	written, err := seedCatalogs(context.Background(), repo, "", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Positive(t, written)
}

func TestSeedCatalogsMissingFile(t *testing.T) {
	repo := repository.NewCatalogRepository(testdb.Open(t))

	_, err := seedCatalogs(context.Background(), repo, filepath.Join(t.TempDir(), "missing.yaml"), &bytes.Buffer{})
	assert.Error(t, err)
}
