package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/site/repository"
)

// Manager replays a session's state into a fresh Machine, runs one operation
// on it and stores the result. Operations on the same session are serialized;
// different sessions run in parallel.
type Manager struct {
	sites repository.SiteRepository
	store Store

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func NewManager(sites repository.SiteRepository, store Store) *Manager {
	return &Manager{sites: sites, store: store, locks: map[string]*sessionLock{}}
}

// Do returns the state after fn ran. If fn fails the machine has not moved,
// so the returned state is still the one the session had before.
func (m *Manager) Do(ctx context.Context, sid string, fn func(*navigation.Machine) error) (navigation.State, error) {
	unlock := m.lock(sid)
	defer unlock()

	saved, ok, err := m.store.Load(ctx, sid)
	if err != nil {
		return navigation.State{}, err
	}
	mc := navigation.New(m.sites)
	if ok {
		mc.Restore(saved)
	}

	opErr := fn(mc)
	st := mc.State()
	// saved even when unchanged so a store with TTLs keeps the session alive
	if err := m.store.Save(ctx, sid, st); err != nil {
		return st, fmt.Errorf("save session: %w", err)
	}
	return st, opErr
}

// Current is Do with no operation.
func (m *Manager) Current(ctx context.Context, sid string) (navigation.State, error) {
	return m.Do(ctx, sid, func(*navigation.Machine) error { return nil })
}

func (m *Manager) lock(sid string) func() {
	m.mu.Lock()
	l := m.locks[sid]
	if l == nil {
		l = &sessionLock{}
		m.locks[sid] = l
	}
	l.refs++
	m.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, sid)
		}
		m.mu.Unlock()
	}
}
