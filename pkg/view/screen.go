package view

import (
	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/series"
)

type Kind string

const (
	KindRoster Kind = "roster"
	KindDetail Kind = "detail"
)

// Screen is everything a renderer needs for one frame: the roster or exactly
// one detail panel.
type Screen struct {
	Kind   Kind             `json:"kind"`
	State  navigation.State `json:"state"`
	Roster []SiteSummary    `json:"roster,omitempty"`
	Detail *Detail          `json:"detail,omitempty"`
}

type SiteSummary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	CropType    string         `json:"crop_type"`
	SeedVariety string         `json:"seed_variety"`
	SowingDate  entities.Date  `json:"sowing_date"`
	LastRecord  *entities.Date `json:"last_record"` // nil when the site has no daily logs
}

type Detail struct {
	SiteID   string `json:"site_id"`
	SiteName string `json:"site_name"`
	Tabs     []Tab  `json:"tabs"`
	Panel    Panel  `json:"panel"`
}

type Tab struct {
	View   navigation.View `json:"view"`
	Label  string          `json:"label"`
	Active bool            `json:"active"`
}

// Panel carries the slice of site data for Panel.View; the other fields stay
// empty.
type Panel struct {
	View         navigation.View                `json:"view"`
	General      *GeneralPanel                  `json:"general,omitempty"`
	Climate      *ClimatePanel                  `json:"climate,omitempty"`
	Series       *series.Series                 `json:"series,omitempty"`
	Applications []entities.ApplicationLog      `json:"applications,omitempty"`
	Harvests     []entities.HarvestLog          `json:"harvests,omitempty"`
	Incidents    []entities.Incident            `json:"incidents,omitempty"`
	Personnel    []entities.PersonnelAssignment `json:"personnel,omitempty"`
	Map          *MapPanel                      `json:"map,omitempty"`
}

type GeneralPanel struct {
	Location    string               `json:"location"`
	Coordinates entities.Coordinates `json:"coordinates"`
	CropType    string               `json:"crop_type"`
	SeedVariety string               `json:"seed_variety"`
	SowingDate  entities.Date        `json:"sowing_date"`
}

type ClimatePanel struct {
	Location    string               `json:"location"`
	Coordinates entities.Coordinates `json:"coordinates"`
	Latest      *entities.DailyLog   `json:"latest,omitempty"`
}

type MapPanel struct {
	Name        string               `json:"name"`
	Coordinates entities.Coordinates `json:"coordinates"`
}
