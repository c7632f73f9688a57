package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMarker is the directory whose presence marks a repository root.
const DefaultMarker = ".git"

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("repository not found")

// NotFoundError reports that no ancestor of Dir contains the marker directory.
type NotFoundError struct {
	Dir    string
	Marker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s directory found in %s or any parent directory", e.Marker, e.Dir)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Locator finds repository roots.
type Locator struct {
	// Marker is the directory name to look for. Empty means DefaultMarker.
	Marker string
}

func (l Locator) marker() string {
	if l.Marker == "" {
		return DefaultMarker
	}
	return l.Marker
}

// Root returns the first directory, starting at dir and moving upward, that
// contains the marker directory. An empty dir means the working directory.
func (l Locator) Root(dir string) (string, error) {
	start, err := absDir(dir)
	if err != nil {
		return "", err
	}

	marker := l.marker()
	current := start
	for {
		info, err := os.Stat(filepath.Join(current, marker))
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", &NotFoundError{Dir: start, Marker: marker}
		}
		current = parent
	}
}

// IsRepository reports whether dir or one of its ancestors is a repository root.
func (l Locator) IsRepository(dir string) bool {
	_, err := l.Root(dir)
	return err == nil
}

func absDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}
