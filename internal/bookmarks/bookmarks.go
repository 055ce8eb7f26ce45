// Package bookmarks holds the bookmark value type and its on-disk store.
package bookmarks

import (
	"path/filepath"

	"shellmark/internal/storage"
)

// Bookmark names a destination on disk. Values are never mutated in place;
// the list they belong to is replaced wholesale on every change.
type Bookmark struct {
	Name string `json:"name"`
	Dest string `json:"dest"`
}

// Corpus is the text a bookmark is fuzzy-matched against: the name plus the
// friendly form of the destination.
func (b Bookmark) Corpus() string {
	return b.Name + " " + storage.FriendlyPath(b.Dest)
}

// Add inserts bm into list, keyed by name. When a bookmark with the same
// name exists the list is returned unchanged unless force is set, in which
// case the old entry is dropped and bm appended. The second return reports
// whether the list changed.
func Add(list []Bookmark, bm Bookmark, force bool) ([]Bookmark, bool) {
	for i, existing := range list {
		if existing.Name != bm.Name {
			continue
		}
		if !force {
			return list, false
		}
		next := make([]Bookmark, 0, len(list))
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		return append(next, bm), true
	}
	next := make([]Bookmark, len(list), len(list)+1)
	copy(next, list)
	return append(next, bm), true
}

// DefaultName derives a bookmark name from its destination: the base name of
// the path, or the friendly path for roots like "/" where no base exists.
func DefaultName(dest string) string {
	base := filepath.Base(dest)
	if base == "." || base == string(filepath.Separator) {
		return storage.FriendlyPath(dest)
	}
	return base
}
