package entities

import "fmt"

// ValidationError reports a raw record field that cannot become part of a Site.
type ValidationError struct {
	SiteID string
	Field  string // path inside the raw site, e.g. irrigationLogs[2].water
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.SiteID != "" {
		return fmt.Sprintf("site %q: invalid %s %v: %s", e.SiteID, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
