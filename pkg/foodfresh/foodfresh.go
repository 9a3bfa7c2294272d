// Package foodfresh is the public entry point for opening a personal food
// inventory. It selects a document backend from a types.Config, attaches it
// and wires the inventory store on top.
//
// Example:
//
//	inv, err := foodfresh.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".foodfresh-db",
//	})
//	if err != nil {
//	    return err
//	}
//	defer inv.Close()
package foodfresh

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/foodfresh/internal/document"
	"github.com/mesh-intelligence/foodfresh/internal/filestore"
	"github.com/mesh-intelligence/foodfresh/internal/kv"
	"github.com/mesh-intelligence/foodfresh/internal/sqlite"
	"github.com/mesh-intelligence/foodfresh/internal/store"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Version is the foodfresh release version.
const Version = "0.4.0"

// Inventory is an open store together with the backend it persists to.
type Inventory struct {
	*store.Store
	backend kv.Backend
}

// NewBackend returns a detached backend for the named backend type.
func NewBackend(name string) (kv.Backend, error) {
	switch name {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendFile:
		return filestore.NewBackend(), nil
	case types.BackendMemory:
		m := kv.NewMemory()
		// NewMemory starts attached; Open attaches it again.
		_ = m.Detach()
		return m, nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}

// Open attaches the backend described by config and loads the inventory
// from it. logger may be nil.
func Open(config types.Config, logger *slog.Logger, opts ...store.Option) (*Inventory, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	backend, err := NewBackend(config.Backend)
	if err != nil {
		return nil, err
	}
	if err := backend.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}

	if logger != nil {
		logger = logger.With("backend", config.Backend)
		opts = append([]store.Option{store.WithLogger(logger)}, opts...)
	}
	s := store.New(document.New(backend, logger), opts...)
	return &Inventory{Store: s, backend: backend}, nil
}

// Close detaches the backend. Idempotent.
func (inv *Inventory) Close() error {
	return inv.backend.Detach()
}
