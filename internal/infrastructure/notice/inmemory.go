package notice

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	notice    Notice
	expiresAt time.Time
}

// InMemoryStore implements Store using an in-memory map.
// Suitable for single-instance deployments and testing.
type InMemoryStore struct {
	mu        sync.Mutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryStore creates an in-memory notice store and starts a
// background goroutine that evicts expired notices
func NewInMemoryStore() *InMemoryStore {
	store := &InMemoryStore{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Put stores a notice for the session, replacing any pending one
func (s *InMemoryStore) Put(ctx context.Context, sessionID string, n Notice, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = entry{
		notice:    n,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Pop returns the pending notice for the session and removes it
func (s *InMemoryStore) Pop(ctx context.Context, sessionID string) (*Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[sessionID]
	if !exists {
		return nil, nil
	}
	delete(s.entries, sessionID)

	if time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return &e.notice, nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for sessionID, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, sessionID)
		}
	}
}

// Size returns the number of pending notices (for testing/monitoring)
func (s *InMemoryStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ Store = (*InMemoryStore)(nil)
