// Package series turns date-stamped site logs into chart-ready points.
//
// Input order is never trusted: every function here sorts a copy by date with
// a stable sort, so readings that share a day keep their recorded order and are
// never merged.
package series

import (
	"slices"

	"github.com/BorromeoLara/INVE/entities"
)

type Kind string

const (
	TempMax     Kind = "temp_max"
	WaterVolume Kind = "water"
)

func (k Kind) Title() string {
	switch k {
	case TempMax:
		return "Temp. máxima"
	case WaterVolume:
		return "Agua"
	}
	return string(k)
}

func (k Kind) Unit() string {
	switch k {
	case TempMax:
		return "°C"
	case WaterVolume:
		return "L"
	}
	return ""
}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case TempMax, WaterVolume:
		return Kind(s), true
	}
	return "", false
}

type Point struct {
	Label string        `json:"label"`
	Date  entities.Date `json:"date"`
	Value float64       `json:"value"`
}

type Series struct {
	Kind   Kind    `json:"kind"`
	Title  string  `json:"title"`
	Unit   string  `json:"unit"`
	Points []Point `json:"points"`
}

func (s Series) Empty() bool { return len(s.Points) == 0 }

// SortByDate returns a date-ascending copy of entries.
func SortByDate[T any](entries []T, dateOf func(T) entities.Date) []T {
	out := make([]T, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, func(a, b T) int { return dateOf(a).Compare(dateOf(b)) })
	return out
}

func Aggregate[T any](entries []T, dateOf func(T) entities.Date, valueOf func(T) float64) []Point {
	sorted := SortByDate(entries, dateOf)
	pts := make([]Point, 0, len(sorted))
	for _, e := range sorted {
		d := dateOf(e)
		pts = append(pts, Point{Label: d.String(), Date: d, Value: valueOf(e)})
	}
	return pts
}

// MostRecent is the last entry in stable date order, so among several entries
// on the latest day the one recorded last wins.
func MostRecent[T any](entries []T, dateOf func(T) entities.Date) (T, bool) {
	var zero T
	if len(entries) == 0 {
		return zero, false
	}
	sorted := SortByDate(entries, dateOf)
	return sorted[len(sorted)-1], true
}

func dailyDate(l entities.DailyLog) entities.Date { return l.Date }
func irrigationDate(l entities.IrrigationLog) entities.Date { return l.Date }

func build(kind Kind, pts []Point) Series {
	return Series{Kind: kind, Title: kind.Title(), Unit: kind.Unit(), Points: pts}
}

func TempMaxSeries(s *entities.Site) Series {
	return build(TempMax, Aggregate(s.DailyLogs(), dailyDate,
		func(l entities.DailyLog) float64 { return l.TempMax }))
}

func WaterVolumeSeries(s *entities.Site) Series {
	return build(WaterVolume, Aggregate(s.IrrigationLogs(), irrigationDate,
		func(l entities.IrrigationLog) float64 { return l.WaterVolume }))
}

func Of(s *entities.Site, kind Kind) (Series, bool) {
	switch kind {
	case TempMax:
		return TempMaxSeries(s), true
	case WaterVolume:
		return WaterVolumeSeries(s), true
	}
	return Series{}, false
}

func LatestDailyLog(s *entities.Site) (entities.DailyLog, bool) {
	return MostRecent(s.DailyLogs(), dailyDate)
}
