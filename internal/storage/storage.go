// Package storage resolves where shellmark keeps its data on disk and
// renders paths in a form friendly for display.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvDataDir overrides the platform data directory when set. Mainly useful
// for tests and for users who keep their dotfiles in one place.
const EnvDataDir = "SHELLMARK_DATA"

// DataDir returns the directory holding shellmark's bookmarks and config.
// The directory is not created; see EnsureDataDir.
func DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "shellmark"), nil
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "shellmark"), nil
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "shellmark"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "shellmark"), nil
}

// EnsureDataDir resolves the data directory and creates it if missing.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// FriendlyPath renders a path with the home directory abbreviated to "~".
// Paths outside the home directory are returned unchanged.
func FriendlyPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	if rel == "." {
		return "~"
	}
	return filepath.Join("~", rel)
}
