package kv

import "sync"

type Memory struct {
	mutex  sync.RWMutex
	values map[string]string
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, exists := m.values[key]

	return value, exists
}

// Remove implements Store.
func (m *Memory) Remove(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.values, key)

	return nil
}

// Set implements Store.
func (m *Memory) Set(key string, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value

	return nil
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

var _ Store = &Memory{}
