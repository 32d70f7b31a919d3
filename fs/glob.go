package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/chatview"
)

// Glob returns the files under dir matching pattern, sorted. Patterns
// support ** for recursive matching. Returned paths are joined with dir.
func Glob(dir, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: pattern is required", chatview.ErrValidation)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid glob pattern: %s", chatview.ErrValidation, pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", chatview.ErrValidation, dir)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
