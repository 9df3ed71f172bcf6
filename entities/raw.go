package entities

import "encoding/json"

// RawSite is the loader-facing shape of one site in a snapshot. Numbers are
// kept as json.Number so that spreadsheet and database sources can hand over
// cell text untouched and let NewSite decide whether it is valid.
type RawSite struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Coordinates RawCoordinates `json:"coordinates"`
	CropType    string         `json:"cropType"`
	SeedVariety string         `json:"seedVariety"`
	SowingDate  string         `json:"sowingDate"`

	DailyLogs       []RawDailyLog       `json:"dailyLogs"`
	IrrigationLogs  []RawIrrigationLog  `json:"irrigationLogs"`
	ApplicationLogs []RawApplicationLog `json:"applicationLogs"`
	HarvestLogs     []RawHarvestLog     `json:"harvestLogs"`
	Incidents       []RawIncident       `json:"incidents"`
	Personnel       []RawPersonnel      `json:"personnel"`

	decodeErr error
}

// UndecodedSite stands in for a snapshot record the loader could not decode.
// NewSite rejects it with a ValidationError, so the failure is reported like
// any other invalid site instead of aborting the load.
func UndecodedSite(id string, err error) RawSite {
	return RawSite{ID: id, decodeErr: err}
}

type RawCoordinates struct {
	Lat json.Number `json:"lat"`
	Lon json.Number `json:"lon"`
}

type RawDailyLog struct {
	Date    string      `json:"date"`
	TempMax json.Number `json:"tempMax"`
}

type RawIrrigationLog struct {
	Date  string      `json:"date"`
	Water json.Number `json:"water"`
}

type RawApplicationLog struct {
	Date    string `json:"date"`
	Product string `json:"product"`
}

type RawHarvestLog struct {
	Date   string      `json:"date"`
	Weight json.Number `json:"weight"`
}

type RawIncident struct {
	Description string `json:"description"`
}

type RawPersonnel struct {
	Name string `json:"name"`
	Task string `json:"task"`
}
