package entities

import (
	"encoding/json"
	"slices"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type DailyLog struct {
	Date    Date    `json:"date"`
	TempMax float64 `json:"temp_max"`
}

type IrrigationLog struct {
	Date        Date    `json:"date"`
	WaterVolume float64 `json:"water_volume"` // litres
}

type ApplicationLog struct {
	Date    Date   `json:"date"`
	Product string `json:"product"`
}

type HarvestLog struct {
	Date   Date    `json:"date"`
	Weight float64 `json:"weight"` // kg
}

type Incident struct {
	Description string `json:"description"`
}

type PersonnelAssignment struct {
	Name string `json:"name"`
	Task string `json:"task"`
}

// Site is a monitored greenhouse and its history. It is built once by NewSite
// and never changes afterwards; the log accessors hand out copies.
type Site struct {
	id          string
	name        string
	location    string
	coordinates Coordinates
	cropType    string
	seedVariety string
	sowingDate  Date

	dailyLogs       []DailyLog
	irrigationLogs  []IrrigationLog
	applicationLogs []ApplicationLog
	harvestLogs     []HarvestLog
	incidents       []Incident
	personnel       []PersonnelAssignment
}

func (s *Site) ID() string { return s.id }
func (s *Site) Name() string { return s.name }
func (s *Site) Location() string { return s.location }
func (s *Site) Coordinates() Coordinates { return s.coordinates }
func (s *Site) CropType() string { return s.cropType }
func (s *Site) SeedVariety() string { return s.seedVariety }
func (s *Site) SowingDate() Date { return s.sowingDate }

func (s *Site) DailyLogs() []DailyLog { return slices.Clone(s.dailyLogs) }
func (s *Site) IrrigationLogs() []IrrigationLog { return slices.Clone(s.irrigationLogs) }
func (s *Site) ApplicationLogs() []ApplicationLog { return slices.Clone(s.applicationLogs) }
func (s *Site) HarvestLogs() []HarvestLog { return slices.Clone(s.harvestLogs) }
func (s *Site) Incidents() []Incident { return slices.Clone(s.incidents) }
func (s *Site) Personnel() []PersonnelAssignment { return slices.Clone(s.personnel) }

func (s *Site) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              string                `json:"id"`
		Name            string                `json:"name"`
		Location        string                `json:"location"`
		Coordinates     Coordinates           `json:"coordinates"`
		CropType        string                `json:"crop_type"`
		SeedVariety     string                `json:"seed_variety"`
		SowingDate      Date                  `json:"sowing_date"`
		DailyLogs       []DailyLog            `json:"daily_logs"`
		IrrigationLogs  []IrrigationLog       `json:"irrigation_logs"`
		ApplicationLogs []ApplicationLog      `json:"application_logs"`
		HarvestLogs     []HarvestLog          `json:"harvest_logs"`
		Incidents       []Incident            `json:"incidents"`
		Personnel       []PersonnelAssignment `json:"personnel"`
	}{
		s.id, s.name, s.location, s.coordinates, s.cropType, s.seedVariety, s.sowingDate,
		s.dailyLogs, s.irrigationLogs, s.applicationLogs, s.harvestLogs, s.incidents, s.personnel,
	})
}
