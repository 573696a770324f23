package cache

import "sync"

// Memory is an in-process Cache. The zero value is ready to use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Store implements Cache. data is copied.
func (m *Memory) Store(key string, data []byte) error {
	if err := checkStore(key, data); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = append([]byte(nil), data...)
	return nil
}

// Read implements Cache.
func (m *Memory) Read(key string, dst []byte) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.entries[key]
	if !ok {
		return 0, nil
	}
	return readInto(dst, blob), nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
