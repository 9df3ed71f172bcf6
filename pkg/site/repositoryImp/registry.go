package repositoryImp

import (
	"fmt"
	"slices"
	"sync"

	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/site/repository"
)

type DuplicateIdentifierError struct{ ID string }

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("site %q already registered", e.ID)
}

func (e *DuplicateIdentifierError) DuplicateID() string { return e.ID }

// Registry keeps sites in registration order with an id index for lookups.
type Registry struct {
	mu    sync.RWMutex
	order []*entities.Site
	byID  map[string]*entities.Site
}

var _ repository.SiteRepository = (*Registry)(nil)

func New() *Registry { return &Registry{byID: map[string]*entities.Site{}} }

func (r *Registry) Register(s *entities.Site) error {
	if s == nil {
		return fmt.Errorf("register: nil site")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID()]; ok {
		return &DuplicateIdentifierError{ID: s.ID()}
	}
	r.byID[s.ID()] = s
	r.order = append(r.order, s)
	return nil
}

func (r *Registry) ListAll() []*entities.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) Find(id string) (*entities.Site, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
