package kv

import (
	"sync"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Memory is a Backend that keeps documents in a map. Documents do not survive
// Detach.
type Memory struct {
	mu       sync.RWMutex
	attached bool
	docs     map[string][]byte
}

// NewMemory returns an attached, empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{attached: true, docs: make(map[string][]byte)}
}

// Attach re-opens a detached Memory with an empty document set.
func (m *Memory) Attach(config types.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attached {
		return types.ErrAlreadyAttached
	}
	m.attached = true
	m.docs = make(map[string][]byte)
	return nil
}

// Detach drops all documents.
func (m *Memory) Detach() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attached = false
	m.docs = nil
	return nil
}

// Get returns a copy of the document under key.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.attached {
		return nil, false, types.ErrBackendDetached
	}
	v, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores copies of all entries. Keys are validated before anything is
// written.
func (m *Memory) Put(entries ...Entry) error {
	for _, e := range entries {
		if err := ValidateKey(e.Key); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.attached {
		return types.ErrBackendDetached
	}
	for _, e := range entries {
		m.docs[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.attached {
		return types.ErrBackendDetached
	}
	delete(m.docs, key)
	return nil
}
