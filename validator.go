package sq3

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validator handles validation logic for Builder
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validateDatabasePath checks that path names a file that exists or can be
// created: it must not be empty, must not be a directory, and its parent
// directory must exist. ":memory:" is always accepted.
// It reports whether the file already exists.
func (v *validator) validateDatabasePath(path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, ErrEmptyDatabasePath
	}
	if path == memoryDatabase {
		return true, nil
	}

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("database path is a directory: %s", path)
		}
		return true, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat database path %s: %w", path, err)
	}

	if err := v.validateParentDirectory(path); err != nil {
		return false, err
	}
	return false, nil
}

// validateParentDirectory checks that the directory a new file would be created in exists
func (v *validator) validateParentDirectory(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to check directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}

// validateHistoryLength rejects negative history lengths
func (v *validator) validateHistoryLength(n int) error {
	if n < 0 {
		return fmt.Errorf("history length must not be negative: %d", n)
	}
	return nil
}
