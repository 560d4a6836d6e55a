package store

import (
	"fmt"
	"os"
	"path/filepath"
)

var _ Medium = (*FileMedium)(nil)

// FileMedium persists each slot as one JSON file in a data folder. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// half-written slot behind. There is no cross-process locking: the storage
// model assumes a single active writer per data folder, and two concurrent
// writers race with last-writer-wins.
type FileMedium struct {
	folder string
}

// NewFileMedium creates the data folder if needed.
func NewFileMedium(folder string) (*FileMedium, error) {
	if err := os.MkdirAll(folder, 0o700); err != nil {
		return nil, fmt.Errorf("[NewFileMedium] creating data folder: %w", err)
	}
	return &FileMedium{folder: folder}, nil
}

func (f *FileMedium) path(slot string) string {
	return filepath.Join(f.folder, slot+".json")
}

func (f *FileMedium) Read(slot string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[FileMedium Read] %w", err)
	}
	return data, true, nil
}

func (f *FileMedium) Write(slot string, data []byte) error {
	tmp := f.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("[FileMedium Write] %w", err)
	}
	if err := os.Rename(tmp, f.path(slot)); err != nil {
		return fmt.Errorf("[FileMedium Write] replacing slot file: %w", err)
	}
	return nil
}

func (f *FileMedium) Remove(slot string) error {
	err := os.Remove(f.path(slot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("[FileMedium Remove] %w", err)
	}
	return nil
}
