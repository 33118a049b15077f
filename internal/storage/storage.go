// Package storage persists captured screenshots on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

var ErrWrite = errors.New("write screenshot")

// Write saves data to path, creating missing parent directories. An existing
// file at path is overwritten. On failure the file may be left truncated;
// there is no cleanup pass.
func Write(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
