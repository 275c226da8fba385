package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damda-market/storefront/internal/model"
)

func TestFileStoreReadMissingLeavesDefault(t *testing.T) {
	store := NewFileStore(t.TempDir())
	products := []model.Product{{ID: "default"}}
	store.Read(DocProducts, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "default", products[0].ID)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	in := []model.Product{{ID: "p1", Name: "사과", Price: 10000}}
	require.NoError(t, store.Write(DocProducts, in))

	var out []model.Product
	store.Read(DocProducts, &out)
	assert.Equal(t, in, out)
}

func TestFileStoreWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)
	require.NoError(t, store.Write(DocPages, map[string]model.Page{}))
	_, err := os.Stat(filepath.Join(dir, DocPages))
	assert.NoError(t, err)
}

func TestFileStoreReadCorruptLeavesDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocProducts), []byte("{broken"), 0o644))
	store := NewFileStore(dir)

	products := []model.Product{}
	store.Read(DocProducts, &products)
	assert.Empty(t, products)
}
