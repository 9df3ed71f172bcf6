package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NewSite validates a raw snapshot record and freezes it into a Site.
// The first invalid field aborts construction; nothing is coerced.
func NewSite(r RawSite) (*Site, error) {
	if r.decodeErr != nil {
		return nil, undecodable(r.ID, r.decodeErr)
	}
	v := validator{siteID: r.ID}
	if strings.TrimSpace(r.ID) == "" {
		return nil, &ValidationError{Field: "id", Value: r.ID, Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.ID) != r.ID {
		return nil, &ValidationError{Field: "id", Value: fmt.Sprintf("%q", r.ID), Reason: "surrounding whitespace"}
	}

	s := &Site{
		id:          v.siteID,
		name:        strings.TrimSpace(r.Name),
		location:    strings.TrimSpace(r.Location),
		cropType:    strings.TrimSpace(r.CropType),
		seedVariety: strings.TrimSpace(r.SeedVariety),
	}

	lat := v.number("coordinates.lat", r.Coordinates.Lat, -90, 90)
	lon := v.number("coordinates.lon", r.Coordinates.Lon, -180, 180)
	s.coordinates = Coordinates{Lat: lat, Lon: lon}
	s.sowingDate = v.date("sowingDate", r.SowingDate)

	s.dailyLogs = make([]DailyLog, 0, len(r.DailyLogs))
	for i, l := range r.DailyLogs {
		f := fmt.Sprintf("dailyLogs[%d]", i)
		s.dailyLogs = append(s.dailyLogs, DailyLog{
			Date:    v.date(f+".date", l.Date),
			TempMax: v.number(f+".tempMax", l.TempMax, math.Inf(-1), math.Inf(1)),
		})
	}
	s.irrigationLogs = make([]IrrigationLog, 0, len(r.IrrigationLogs))
	for i, l := range r.IrrigationLogs {
		f := fmt.Sprintf("irrigationLogs[%d]", i)
		s.irrigationLogs = append(s.irrigationLogs, IrrigationLog{
			Date:        v.date(f+".date", l.Date),
			WaterVolume: v.number(f+".water", l.Water, 0, math.Inf(1)),
		})
	}
	s.applicationLogs = make([]ApplicationLog, 0, len(r.ApplicationLogs))
	for i, l := range r.ApplicationLogs {
		s.applicationLogs = append(s.applicationLogs, ApplicationLog{
			Date:    v.date(fmt.Sprintf("applicationLogs[%d].date", i), l.Date),
			Product: strings.TrimSpace(l.Product),
		})
	}
	s.harvestLogs = make([]HarvestLog, 0, len(r.HarvestLogs))
	for i, l := range r.HarvestLogs {
		f := fmt.Sprintf("harvestLogs[%d]", i)
		s.harvestLogs = append(s.harvestLogs, HarvestLog{
			Date:   v.date(f+".date", l.Date),
			Weight: v.number(f+".weight", l.Weight, 0, math.Inf(1)),
		})
	}
	s.incidents = make([]Incident, 0, len(r.Incidents))
	for _, in := range r.Incidents {
		s.incidents = append(s.incidents, Incident{Description: strings.TrimSpace(in.Description)})
	}
	s.personnel = make([]PersonnelAssignment, 0, len(r.Personnel))
	for _, p := range r.Personnel {
		s.personnel = append(s.personnel, PersonnelAssignment{Name: strings.TrimSpace(p.Name), Task: strings.TrimSpace(p.Task)})
	}

	if v.err != nil {
		return nil, v.err
	}
	return s, nil
}

// validator keeps the first failure so the builder above can stay linear.
type validator struct {
	siteID string
	err    *ValidationError
}

func (v *validator) fail(field string, value any, reason string) {
	if v.err == nil {
		v.err = &ValidationError{SiteID: v.siteID, Field: field, Value: value, Reason: reason}
	}
}

func (v *validator) date(field, raw string) Date {
	if strings.TrimSpace(raw) == "" {
		v.fail(field, raw, "missing date")
		return Date{}
	}
	d, err := ParseDate(raw)
	if err != nil {
		v.fail(field, raw, "want YYYY-MM-DD")
		return Date{}
	}
	return d
}

func (v *validator) number(field string, raw json.Number, min, max float64) float64 {
	txt := strings.TrimSpace(raw.String())
	if txt == "" {
		v.fail(field, txt, "missing number")
		return 0
	}
	n, err := strconv.ParseFloat(txt, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		v.fail(field, txt, "not a finite number")
		return 0
	}
	if n < min {
		if min == 0 {
			v.fail(field, n, "must not be negative")
		} else {
			v.fail(field, n, fmt.Sprintf("must be >= %g", min))
		}
		return 0
	}
	if n > max {
		v.fail(field, n, fmt.Sprintf("must be <= %g", max))
		return 0
	}
	return n
}

// undecodable turns a loader's decode failure into the ValidationError the
// rest of the pipeline reports.
func undecodable(id string, err error) *ValidationError {
	ve := &ValidationError{SiteID: id, Field: "record", Reason: err.Error()}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		ve.Field = te.Field
		ve.Value = te.Value
		ve.Reason = "want " + te.Type.String()
	}
	return ve
}
