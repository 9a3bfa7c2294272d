// Package kv defines the key-value document store the inventory persists
// into, and an in-memory implementation of it.
package kv

import (
	"strings"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Entry is a single key and the full document stored under it.
type Entry struct {
	Key   string
	Value []byte
}

// Store reads and writes whole documents by key.
type Store interface {
	// Get returns the document stored under key. ok is false when the key
	// is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Put overwrites every entry. Backends that support transactions apply
	// all entries or none.
	Put(entries ...Entry) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Backend is a Store with an attach/detach lifecycle.
type Backend interface {
	Store

	// Attach opens the backend described by config. Returns
	// types.ErrAlreadyAttached if called while attached.
	Attach(config types.Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return types.ErrBackendDetached.
	Detach() error
}

// ValidateKey rejects keys that are empty or could escape a directory when
// used as a file name.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return types.ErrInvalidKey
	}
	return nil
}
