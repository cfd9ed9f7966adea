package kvstore

import (
	"errors"
	"sync"
)

var errQuota = errors.New("kvstore: quota exceeded")

// memStore keeps everything in a map. Used by tests and available as a
// throwaway backend when no DB path is configured.
type memStore struct {
	mu   sync.RWMutex
	data map[string]string

	// FailPuts forces Put to fail; tests use it to exercise write-error paths.
	failPuts bool
}

type MemStore = memStore

func NewMemory() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPuts {
		return errQuota
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FailPuts toggles simulated write failure (e.g. quota exceeded).
func (m *memStore) FailPuts(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPuts = fail
}

// Seed writes a raw value bypassing Put's failure switch.
func (m *memStore) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
