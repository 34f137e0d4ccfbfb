package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/storage"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func openSQLite(t *testing.T, name string) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s := openSQLite(t, "sidebar.db")

	assert.NilError(t, s.SaveFolders("alice", sampleFolders()))

	loaded, err := s.LoadFolders("alice")
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, sampleFolders())
}

func TestSQLiteStorage_Overwrite(t *testing.T) {
	s := openSQLite(t, "sidebar.db")

	assert.NilError(t, s.SaveFolders("alice", sampleFolders()))
	assert.NilError(t, s.SaveFolders("alice", []model.Folder{model.NewDefaultFolder([]string{"g1"})}))

	loaded, err := s.LoadFolders("alice")
	assert.NilError(t, err)
	assert.Check(t, is.Len(loaded, 1))
}

func TestSQLiteStorage_EmptyDatabase(t *testing.T) {
	s := openSQLite(t, "empty.db")

	folders, err := s.LoadFolders("alice")
	assert.NilError(t, err)
	assert.Check(t, is.Len(folders, 0))

	mode, err := s.LoadDisplayMode()
	assert.NilError(t, err)
	assert.Equal(t, mode, model.DisplayList)
}

func TestSQLiteStorage_DisplayMode(t *testing.T) {
	s := openSQLite(t, "sidebar.db")

	assert.NilError(t, s.SaveDisplayMode(model.DisplayGrid))
	mode, err := s.LoadDisplayMode()
	assert.NilError(t, err)
	assert.Equal(t, mode, model.DisplayGrid)
}

func TestSQLiteStorage_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sidebar.db")

	s, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	assert.NilError(t, s.SaveFolders("alice", sampleFolders()))
	assert.NilError(t, s.Close())

	// Migrations must be idempotent on reopen
	s, err = storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	defer s.Close()

	version, err := s.SchemaVersion()
	assert.NilError(t, err)
	assert.Equal(t, version, 2)

	loaded, err := s.LoadFolders("alice")
	assert.NilError(t, err)
	assert.Check(t, is.Len(loaded, 2))
}
