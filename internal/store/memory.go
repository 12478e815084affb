package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed KV used by tests and demo mode.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Load(ctx context.Context, key string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Unreadable state is treated the same as absent state.
		return nil
	}
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Put stores a raw value without going through Marshal, letting tests plant
// corrupt payloads.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = json.RawMessage(raw)
	s.mu.Unlock()
}
