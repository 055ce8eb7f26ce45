package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shellmark/internal/storage"
)

const bookmarksFile = "bookmarks.json"

// Store loads and persists the ordered bookmark list. Load is called once at
// session start; Save once per successful mutation.
type Store interface {
	Load() ([]Bookmark, error)
	Save([]Bookmark) error
}

// FileStore keeps bookmarks as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStore returns a store rooted in the shellmark data directory,
// creating the directory if needed.
func DefaultStore() (*FileStore, error) {
	dir, err := storage.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	return NewFileStore(filepath.Join(dir, bookmarksFile)), nil
}

// Path reports the location of the backing file.
func (s *FileStore) Path() string { return s.path }

// Load reads the bookmark list. A missing or empty file yields an empty
// list; malformed JSON is an error.
func (s *FileStore) Load() ([]Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks file %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var list []Bookmark
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse bookmarks file %s: %w", s.path, err)
	}
	return list, nil
}

// Save replaces the persisted list.
func (s *FileStore) Save(list []Bookmark) error {
	if list == nil {
		list = []Bookmark{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write bookmarks file %s: %w", s.path, err)
	}
	return nil
}
