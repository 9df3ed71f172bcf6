// Package view composes what the renderer should show for a navigation state.
// Compose is a pure function; Composer only adds the registry lookup.
package view

import (
	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/series"
	"github.com/BorromeoLara/INVE/pkg/site/repository"
)

// Compose builds the screen for st. site must be the site st points at;
// anything that does not line up yields the roster.
func Compose(st navigation.State, site *entities.Site, roster []*entities.Site) Screen {
	if !st.View.IsDetail() || site == nil || site.ID() != st.SiteID {
		return Screen{Kind: KindRoster, State: navigation.Initial(), Roster: summaries(roster)}
	}
	return Screen{
		Kind:  KindDetail,
		State: st,
		Detail: &Detail{
			SiteID:   site.ID(),
			SiteName: site.Name(),
			Tabs:     tabs(st.View),
			Panel:    panel(st.View, site),
		},
	}
}

type Composer struct {
	Sites repository.SiteRepository
}

func (c Composer) Screen(st navigation.State) Screen {
	var site *entities.Site
	if st.Selected() {
		site, _ = c.Sites.Find(st.SiteID)
	}
	return Compose(st, site, c.Sites.ListAll())
}

func Summarize(s *entities.Site) SiteSummary {
	sum := SiteSummary{
		ID:          s.ID(),
		Name:        s.Name(),
		Location:    s.Location(),
		CropType:    s.CropType(),
		SeedVariety: s.SeedVariety(),
		SowingDate:  s.SowingDate(),
	}
	if last, ok := series.LatestDailyLog(s); ok {
		d := last.Date
		sum.LastRecord = &d
	}
	return sum
}

func summaries(sites []*entities.Site) []SiteSummary {
	out := make([]SiteSummary, 0, len(sites))
	for _, s := range sites {
		out = append(out, Summarize(s))
	}
	return out
}

func tabs(active navigation.View) []Tab {
	views := navigation.DetailViews()
	out := make([]Tab, len(views))
	for i, v := range views {
		out[i] = Tab{View: v, Label: v.Label(), Active: v == active}
	}
	return out
}

func panel(v navigation.View, s *entities.Site) Panel {
	p := Panel{View: v}
	switch v {
	case navigation.General:
		p.General = &GeneralPanel{
			Location:    s.Location(),
			Coordinates: s.Coordinates(),
			CropType:    s.CropType(),
			SeedVariety: s.SeedVariety(),
			SowingDate:  s.SowingDate(),
		}
	case navigation.Climate:
		p.Climate = &ClimatePanel{Location: s.Location(), Coordinates: s.Coordinates()}
		if last, ok := series.LatestDailyLog(s); ok {
			p.Climate.Latest = &last
		}
	case navigation.Record:
		sr := series.TempMaxSeries(s)
		p.Series = &sr
	case navigation.Irrigation:
		sr := series.WaterVolumeSeries(s)
		p.Series = &sr
	case navigation.Applications:
		p.Applications = s.ApplicationLogs()
	case navigation.Harvest:
		p.Harvests = s.HarvestLogs()
	case navigation.Incidents:
		p.Incidents = s.Incidents()
	case navigation.Personnel:
		p.Personnel = s.Personnel()
	case navigation.Map:
		p.Map = &MapPanel{Name: s.Name(), Coordinates: s.Coordinates()}
	}
	return p
}
