package storage

import (
	"context"
	"errors"
	"strings"
	"sync"

	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/ports"
)

// Memory keeps sessions in process. When full, saving a new session
// evicts the oldest one.
type Memory struct {
	mu      sync.RWMutex
	max     int
	entries map[string]*ports.Entry
}

func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 1
	}
	return &Memory{max: max, entries: make(map[string]*ports.Entry)}
}

func (s *Memory) Save(ctx context.Context, e *ports.Entry) error {
	if e == nil || normID(e.ID) == "" {
		return errors.New("invalid session: missing ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[normID(e.ID)]; !ok && len(s.entries) >= s.max {
		s.evictOldest()
	}
	s.entries[normID(e.ID)] = e
	return nil
}

func (s *Memory) Load(ctx context.Context, id string) (*ports.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[normID(id)]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}

func (s *Memory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id = normID(id)
	if _, ok := s.entries[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *Memory) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// evictOldest drops the entry with the earliest CreatedAt. Caller holds mu.
func (s *Memory) evictOldest() {
	var oldest *ports.Entry
	for _, e := range s.entries {
		if oldest == nil || e.CreatedAt.Before(oldest.CreatedAt) {
			oldest = e
		}
	}
	if oldest != nil {
		delete(s.entries, normID(oldest.ID))
	}
}

func normID(id string) string { return strings.TrimSpace(id) }
