package navigation

import "fmt"

type SiteNotFoundError struct{ ID string }

func (e *SiteNotFoundError) Error() string { return fmt.Sprintf("site %q not found", e.ID) }

type InvalidTransitionError struct {
	From State
	To   View
}

func (e *InvalidTransitionError) Error() string {
	if !e.To.Valid() {
		return fmt.Sprintf("invalid transition to %s", e.To)
	}
	return fmt.Sprintf("cannot open %s view: no site selected", e.To)
}
