package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/rum/internal/model"
)

// displayModeKey is shared by every identity on this machine.
const displayModeKey = "sidebarListType"

// Storage defines the interface for persisting sidebar state.
type Storage interface {
	LoadFolders(identity string) ([]model.Folder, error)
	SaveFolders(identity string, folders []model.Folder) error
	LoadDisplayMode() (model.DisplayMode, error)
	SaveDisplayMode(mode model.DisplayMode) error
}

// FoldersKey returns the key the folder list of identity is stored under.
func FoldersKey(identity string) string {
	return "sidebarFolders:" + identity
}

// keyValue is the raw key/value layer shared by the backends.
type keyValue interface {
	get(key string) ([]byte, bool, error)
	set(key string, value []byte) error
}

func loadFolders(kv keyValue, identity string) ([]model.Folder, error) {
	data, ok, err := kv.get(FoldersKey(identity))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Folder{}, nil
	}

	var folders []model.Folder
	if err := json.Unmarshal(data, &folders); err != nil {
		return nil, fmt.Errorf("decoding folders for %q: %w", identity, err)
	}

	// Ensure slices are not nil
	if folders == nil {
		folders = []model.Folder{}
	}
	for i := range folders {
		if folders[i].Items == nil {
			folders[i].Items = []string{}
		}
	}
	return folders, nil
}

func saveFolders(kv keyValue, identity string, folders []model.Folder) error {
	if folders == nil {
		folders = []model.Folder{}
	}
	data, err := json.Marshal(folders)
	if err != nil {
		return err
	}
	return kv.set(FoldersKey(identity), data)
}

func loadDisplayMode(kv keyValue) (model.DisplayMode, error) {
	data, ok, err := kv.get(displayModeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return model.DisplayList, nil
	}

	var mode model.DisplayMode
	if err := json.Unmarshal(data, &mode); err != nil || !mode.Valid() {
		return model.DisplayList, nil
	}
	return mode, nil
}

func saveDisplayMode(kv keyValue, mode model.DisplayMode) error {
	data, err := json.Marshal(mode)
	if err != nil {
		return err
	}
	return kv.set(displayModeKey, data)
}

// JSONStorage implements Storage using a single JSON object file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// LoadFolders reads the folder list of identity.
// Returns an empty list if nothing was stored yet.
func (s *JSONStorage) LoadFolders(identity string) ([]model.Folder, error) {
	return loadFolders(s, identity)
}

// SaveFolders writes the folder list of identity.
func (s *JSONStorage) SaveFolders(identity string, folders []model.Folder) error {
	return saveFolders(s, identity, folders)
}

// LoadDisplayMode reads the sidebar display mode, defaulting to list.
func (s *JSONStorage) LoadDisplayMode() (model.DisplayMode, error) {
	return loadDisplayMode(s)
}

// SaveDisplayMode writes the sidebar display mode.
func (s *JSONStorage) SaveDisplayMode(mode model.DisplayMode) error {
	return saveDisplayMode(s, mode)
}

func (s *JSONStorage) readAll() (map[string]json.RawMessage, error) {
	entries := map[string]json.RawMessage{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = map[string]json.RawMessage{}
	}
	return entries, nil
}

func (s *JSONStorage) get(key string) ([]byte, bool, error) {
	entries, err := s.readAll()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// set rewrites the whole file through a temporary file in the same
// directory, so a failed write never leaves a truncated file behind.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) set(key string, value []byte) error {
	entries, err := s.readAll()
	if err != nil {
		return err
	}
	entries[key] = value

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data, 0644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// DefaultJSONPath returns the default storage path: ~/.config/rum/sidebar.json
func DefaultJSONPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sidebar.json"), nil
}

// DefaultConfigDir returns ~/.config/rum.
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "rum"), nil
}

// OpenStorage opens the storage backend selected by cfg.
// Prefers SQLite if configured or if the database file exists, otherwise falls back to JSON.
func OpenStorage(cfg *Config) (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if cfg.Backend == BackendSQLite {
		return NewSQLiteStorage(sqlitePath)
	}

	if cfg.Backend == "" {
		if _, err := os.Stat(sqlitePath); err == nil {
			return NewSQLiteStorage(sqlitePath)
		}
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
