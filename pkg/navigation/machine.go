// Package navigation tracks which site is selected and which view is open.
//
// The whole navigation context is the State pair; a Machine adds nothing but
// the roster it validates against, so a State can be stored and replayed with
// Restore. A Machine is owned by one session and is not safe for concurrent use.
package navigation

import (
	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/site/repository"
)

type State struct {
	SiteID string `json:"site_id,omitempty"`
	View   View   `json:"view"`
}

func (s State) Selected() bool { return s.SiteID != "" }

func Initial() State { return State{View: Roster} }

type Machine struct {
	sites repository.SiteRepository
	state State
}

func New(sites repository.SiteRepository) *Machine {
	return &Machine{sites: sites, state: Initial()}
}

// Restore replaces the current state with a previously saved one, falling back
// to the roster if the saved site is gone or the pair is inconsistent.
func (m *Machine) Restore(st State) State {
	m.state = st
	m.resolve()
	return m.state
}

func (m *Machine) State() State {
	m.resolve()
	return m.state
}

// Site returns the selected site if the current state has one.
func (m *Machine) Site() (*entities.Site, bool) {
	m.resolve()
	if !m.state.Selected() {
		return nil, false
	}
	return m.sites.Find(m.state.SiteID)
}

// SelectSite always lands on the General view.
func (m *Machine) SelectSite(id string) error {
	if _, ok := m.sites.Find(id); !ok {
		return &SiteNotFoundError{ID: id}
	}
	m.state = State{SiteID: id, View: General}
	return nil
}

func (m *Machine) SelectView(v View) error {
	if v == Roster {
		m.ReturnToRoster()
		return nil
	}
	m.resolve()
	if !v.Valid() || !m.state.Selected() {
		return &InvalidTransitionError{From: m.state, To: v}
	}
	m.state.View = v
	return nil
}

func (m *Machine) ReturnToRoster() { m.state = Initial() }

func (m *Machine) resolve() {
	st := m.state
	switch {
	case !st.View.Valid():
		m.state = Initial()
	case st.View == Roster:
		if st.Selected() {
			m.state = Initial()
		}
	case !st.Selected():
		m.state = Initial()
	default:
		if _, ok := m.sites.Find(st.SiteID); !ok {
			m.state = Initial()
		}
	}
}
