// Package session keeps one navigation state per browser session.
package session

import (
	"context"
	"sync"

	"github.com/BorromeoLara/INVE/pkg/navigation"
)

// Store persists navigation state by session id. Load reports ok=false for an
// unknown or expired session.
type Store interface {
	Load(ctx context.Context, sid string) (st navigation.State, ok bool, err error)
	Save(ctx context.Context, sid string, st navigation.State) error
	Delete(ctx context.Context, sid string) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]navigation.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: map[string]navigation.State{}}
}

func (s *MemoryStore) Load(_ context.Context, sid string) (navigation.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[sid]
	return st, ok, nil
}

func (s *MemoryStore) Save(_ context.Context, sid string, st navigation.State) error {
	s.mu.Lock()
	s.states[sid] = st
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.states, sid)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
