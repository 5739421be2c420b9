package repository

import (
	"context"
	"maps"
	"sync"
)

// MemorySettingsStore keeps settings in process memory.
type MemorySettingsStore struct {
	mu       sync.RWMutex
	profiles map[int64]map[string]any
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{profiles: make(map[int64]map[string]any)}
}

func (s *MemorySettingsStore) Load(_ context.Context, profileID int64) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.profiles[profileID]))
	maps.Copy(out, s.profiles[profileID])
	return out, nil
}

func (s *MemorySettingsStore) Save(_ context.Context, profileID int64, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.profiles[profileID]
	if !ok {
		stored = make(map[string]any, len(values))
		s.profiles[profileID] = stored
	}
	maps.Copy(stored, values)
	return nil
}
