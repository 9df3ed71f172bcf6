package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/series"
	"github.com/BorromeoLara/INVE/pkg/site/repositoryImp"
)

func puebla(t *testing.T) *entities.Site {
	t.Helper()
	s, err := entities.NewSite(entities.RawSite{
		ID:          "puebla-001",
		Name:        "Invernadero Sol Naciente",
		Location:    "Puebla, Puebla",
		Coordinates: entities.RawCoordinates{Lat: "19.0414", Lon: "-98.2063"},
		CropType:    "Tomate",
		SeedVariety: "Tomate Saladette SVTE8444",
		SowingDate:  "2024-03-15",
		DailyLogs: []entities.RawDailyLog{
			{Date: "2025-05-27", TempMax: "31"},
			{Date: "2025-05-24", TempMax: "28"},
		},
		IrrigationLogs: []entities.RawIrrigationLog{
			{Date: "2025-05-25", Water: "480"},
			{Date: "2025-05-24", Water: "450"},
		},
		ApplicationLogs: []entities.RawApplicationLog{{Date: "2025-05-25", Product: "Fertilizante NPK"}},
		HarvestLogs:     []entities.RawHarvestLog{{Date: "2025-05-20", Weight: "150"}},
		Incidents:       []entities.RawIncident{{Description: "Mosca blanca detectada"}},
		Personnel:       []entities.RawPersonnel{{Name: "Juan Pérez", Task: "Poda"}},
	})
	require.NoError(t, err)
	return s
}

func bare(t *testing.T, id string) *entities.Site {
	t.Helper()
	s, err := entities.NewSite(entities.RawSite{
		ID:          id,
		Name:        "Sin registros",
		Coordinates: entities.RawCoordinates{Lat: "18.9", Lon: "-98.4"},
		SowingDate:  "2025-01-10",
	})
	require.NoError(t, err)
	return s
}

func TestCompose_Roster(t *testing.T) {
	roster := []*entities.Site{puebla(t), bare(t, "atlixco-002")}

	sc := Compose(navigation.Initial(), nil, roster)

	assert.Equal(t, KindRoster, sc.Kind)
	assert.Nil(t, sc.Detail)
	require.Len(t, sc.Roster, 2)

	first := sc.Roster[0]
	assert.Equal(t, "puebla-001", first.ID)
	assert.Equal(t, "Tomate", first.CropType)
	assert.Equal(t, "2024-03-15", first.SowingDate.String())
	require.NotNil(t, first.LastRecord)
	assert.Equal(t, "2025-05-27", first.LastRecord.String())

	assert.Equal(t, "atlixco-002", sc.Roster[1].ID)
	assert.Nil(t, sc.Roster[1].LastRecord)
}

func TestCompose_EveryDetailViewHasOnePanel(t *testing.T) {
	s := puebla(t)
	for _, v := range navigation.DetailViews() {
		t.Run(v.String(), func(t *testing.T) {
			sc := Compose(navigation.State{SiteID: s.ID(), View: v}, s, nil)
			require.Equal(t, KindDetail, sc.Kind)
			require.NotNil(t, sc.Detail)
			assert.Equal(t, "Invernadero Sol Naciente", sc.Detail.SiteName)
			assert.Equal(t, v, sc.Detail.Panel.View)

			active := 0
			for _, tab := range sc.Detail.Tabs {
				if tab.Active {
					active++
					assert.Equal(t, v, tab.View)
				}
			}
			assert.Equal(t, 1, active)
			assert.Len(t, sc.Detail.Tabs, 9)
		})
	}
}

func TestCompose_PanelContents(t *testing.T) {
	s := puebla(t)
	at := func(v navigation.View) Panel {
		return Compose(navigation.State{SiteID: s.ID(), View: v}, s, nil).Detail.Panel
	}

	g := at(navigation.General).General
	require.NotNil(t, g)
	assert.Equal(t, "Puebla, Puebla", g.Location)
	assert.Equal(t, 19.0414, g.Coordinates.Lat)

	c := at(navigation.Climate).Climate
	require.NotNil(t, c)
	require.NotNil(t, c.Latest)
	assert.Equal(t, 31.0, c.Latest.TempMax)

	rec := at(navigation.Record).Series
	require.NotNil(t, rec)
	assert.Equal(t, series.TempMax, rec.Kind)
	assert.Equal(t, "2025-05-24", rec.Points[0].Label)

	irr := at(navigation.Irrigation).Series
	require.NotNil(t, irr)
	assert.Equal(t, series.WaterVolume, irr.Kind)
	assert.Equal(t, 450.0, irr.Points[0].Value)

	assert.Equal(t, "Fertilizante NPK", at(navigation.Applications).Applications[0].Product)
	assert.Equal(t, 150.0, at(navigation.Harvest).Harvests[0].Weight)
	assert.Equal(t, "Mosca blanca detectada", at(navigation.Incidents).Incidents[0].Description)
	assert.Equal(t, "Poda", at(navigation.Personnel).Personnel[0].Task)

	m := at(navigation.Map).Map
	require.NotNil(t, m)
	assert.Equal(t, -98.2063, m.Coordinates.Lon)

	// only the requested slice is filled
	p := at(navigation.Harvest)
	assert.Nil(t, p.General)
	assert.Nil(t, p.Series)
	assert.Nil(t, p.Map)
	assert.Empty(t, p.Applications)
}

func TestCompose_EmptySeriesIsNotAnError(t *testing.T) {
	s := bare(t, "atlixco-002")
	sc := Compose(navigation.State{SiteID: s.ID(), View: navigation.Irrigation}, s, nil)
	require.NotNil(t, sc.Detail.Panel.Series)
	assert.True(t, sc.Detail.Panel.Series.Empty())

	cl := Compose(navigation.State{SiteID: s.ID(), View: navigation.Climate}, s, nil)
	assert.Nil(t, cl.Detail.Panel.Climate.Latest)
}

func TestCompose_MismatchFallsBackToRoster(t *testing.T) {
	s := puebla(t)
	roster := []*entities.Site{s}

	tests := []struct {
		name string
		st   navigation.State
		site *entities.Site
	}{
		{"no site", navigation.State{SiteID: "puebla-001", View: navigation.Record}, nil},
		{"other site", navigation.State{SiteID: "atlixco-002", View: navigation.Record}, s},
		{"roster view", navigation.State{SiteID: "puebla-001", View: navigation.Roster}, s},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := Compose(tt.st, tt.site, roster)
			assert.Equal(t, KindRoster, sc.Kind)
			assert.Equal(t, navigation.Initial(), sc.State)
			assert.Len(t, sc.Roster, 1)
		})
	}
}

func TestComposer_ResolvesThroughRegistry(t *testing.T) {
	reg := repositoryImp.New()
	require.NoError(t, reg.Register(puebla(t)))
	c := Composer{Sites: reg}

	sc := c.Screen(navigation.State{SiteID: "puebla-001", View: navigation.Personnel})
	assert.Equal(t, KindDetail, sc.Kind)

	gone := c.Screen(navigation.State{SiteID: "unknown-id", View: navigation.Personnel})
	assert.Equal(t, KindRoster, gone.Kind)
}

func TestScreen_JSON(t *testing.T) {
	s := puebla(t)
	sc := Compose(navigation.State{SiteID: s.ID(), View: navigation.Irrigation}, s, nil)
	b, err := json.Marshal(sc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "detail", out["kind"])
	st := out["state"].(map[string]any)
	assert.Equal(t, "irrigation", st["view"])
}
