package preference

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestFileStoreMissingFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yaml")
	store := NewFileStore(path)

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the file")
}

func TestFileStoreSetPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	require.NoError(t, NewFileStore(path).Set("theme", "light"))

	value, ok, err := NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, yaml.Unmarshal(data, &file))
	assert.Equal(t, "1", file.Version)
	assert.Equal(t, map[string]string{"theme": "light"}, file.Values)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestFileStoreOverwritesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("theme", "light"))

	value, _, err := NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [not, a, map"), 0o644))

	store := NewFileStore(path)
	_, ok, err := store.Get("theme")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCorrupt)

	var storageErr *folioerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "read", storageErr.Op)

	// Subsequent reads treat the file as empty and a write replaces it.
	_, ok, err = store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("theme", "dark"))
	value, ok, err := NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreReadFailureDoesNotClobberFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	original := "version: \"1\"\nvalues:\n  theme: light\n  motion: off\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	store := NewFileStore(path)
	store.readFile = func(string) ([]byte, error) { return nil, syscall.EIO }

	_, _, err := store.Get("theme")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorrupt)

	require.Error(t, store.Set("theme", "dark"))
	require.Error(t, store.Delete("motion"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "unreadable file must be left untouched")

	// Once reads work again the existing keys are kept.
	store.readFile = os.ReadFile
	require.NoError(t, store.Set("theme", "dark"))

	value, ok, err := NewFileStore(path).Get("motion")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "off", value)
}

func TestFileStoreWriteFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0o644))

	store := NewFileStore(filepath.Join(blocker, "preferences.yaml"))
	err := store.Set("theme", "light")
	require.Error(t, err)

	var storageErr *folioerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "write", storageErr.Op)

	_, ok, _ := store.Get("theme")
	assert.False(t, ok, "failed write must not leave the value behind")
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.Set("theme", "light"))
	require.NoError(t, store.Delete("theme"))
	require.NoError(t, store.Delete("theme"))

	_, ok, err := NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(map[string]string{"theme": "light"})

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("theme", "dark"))
	assert.Equal(t, 2, store.Writes())

	require.NoError(t, store.Delete("theme"))
	_, ok, _ = store.Get("theme")
	assert.False(t, ok)
}
