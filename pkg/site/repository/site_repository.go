package repository

import "github.com/BorromeoLara/INVE/entities"

// SiteRepository is the read-only roster. Find reports absence with ok=false;
// callers treat a missing site as "back to the roster", never as a failure.
type SiteRepository interface {
	ListAll() []*entities.Site
	Find(id string) (*entities.Site, bool)
	Len() int
}
