// Package filestore implements a document backend that keeps every key in
// its own JSON file inside the data directory.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/foodfresh/internal/kv"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// fileExt is appended to every key to form its file name.
const fileExt = ".json"

// Backend implements kv.Backend on plain files.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dir      string
}

var _ kv.Backend = (*Backend)(nil)

// NewBackend creates a detached file backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach creates DataDir if needed. Returns ErrAlreadyAttached if already
// attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dir := config.DataDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b.dir = dir
	b.attached = true
	return nil
}

// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attached = false
	return nil
}

// Path returns the file that holds key.
func (b *Backend) Path(key string) string {
	return filepath.Join(b.dir, key+fileExt)
}

// Get reads the file for key.
func (b *Backend) Get(key string) ([]byte, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, false, types.ErrBackendDetached
	}
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes every entry to a temp file first and renames them into place
// only when all temp files were written. Renames happen in argument order, so
// a failed rename leaves the earlier entries updated and the later ones
// unchanged.
func (b *Backend) Put(entries ...kv.Entry) error {
	for _, e := range entries {
		if err := kv.ValidateKey(e.Key); err != nil {
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrBackendDetached
	}

	if len(entries) == 1 {
		return writeAtomic(b.Path(entries[0].Key), entries[0].Value)
	}

	temps := make([]string, 0, len(entries))
	cleanup := func() {
		for _, name := range temps {
			os.Remove(name)
		}
	}
	for _, e := range entries {
		name, err := writeTemp(b.Path(e.Key), e.Value)
		if err != nil {
			cleanup()
			return fmt.Errorf("writing %s: %w", e.Key, err)
		}
		temps = append(temps, name)
	}
	for i, e := range entries {
		if err := os.Rename(temps[i], b.Path(e.Key)); err != nil {
			temps = temps[i:]
			cleanup()
			return fmt.Errorf("renaming %s: %w", e.Key, err)
		}
	}
	return nil
}

// Delete removes the file for key.
func (b *Backend) Delete(key string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrBackendDetached
	}
	if err := os.Remove(b.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
