package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SlotRepo implements repository.SlotRepository with one JSON file per key
type SlotRepo struct {
	dir string
}

// NewSlotRepo creates a slot repository rooted at dir
func NewSlotRepo(dir string) *SlotRepo {
	return &SlotRepo{dir: dir}
}

func (r *SlotRepo) pathFor(key string) string {
	return filepath.Join(r.dir, strings.TrimSpace(key)+".json")
}

// Get returns the file contents for key, or nil if the file does not exist
func (r *SlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.pathFor(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set replaces the file for key. The new contents are written to a temp
// file first and renamed into place.
func (r *SlotRepo) Set(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write slot: %w", err)
	}
	// Flush before the rename so a crash cannot publish an empty file
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close slot: %w", err)
	}

	if err := os.Rename(tmpName, r.pathFor(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace slot: %w", err)
	}
	return nil
}
