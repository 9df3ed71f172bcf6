package snapshot

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/BorromeoLara/INVE/database"
	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/site/repositoryImp"
)

// LoadSQLite reads every snapshot table. Sites come back in Seq order and
// their logs in insertion order.
func LoadSQLite(db *gorm.DB) ([]entities.RawSite, error) {
	var rows []entities.SiteRow
	if err := db.Order("seq ASC").Order("site_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query sites: %w", err)
	}

	out := make([]entities.RawSite, len(rows))
	index := make(map[string]*entities.RawSite, len(rows))
	for i, r := range rows {
		out[i] = entities.RawSite{
			ID:          r.SiteID,
			Name:        r.Name,
			Location:    r.Location,
			Coordinates: entities.RawCoordinates{Lat: fnum(r.Lat), Lon: fnum(r.Lon)},
			CropType:    r.CropType,
			SeedVariety: r.SeedVariety,
			SowingDate:  r.SowingDate,
		}
		index[r.SiteID] = &out[i]
	}

	var daily []entities.DailyLogRow
	if err := db.Order("id ASC").Find(&daily).Error; err != nil {
		return nil, fmt.Errorf("query daily_logs: %w", err)
	}
	for _, r := range daily {
		if s := index[r.SiteID]; s != nil {
			s.DailyLogs = append(s.DailyLogs, entities.RawDailyLog{Date: r.Date, TempMax: fnum(r.TempMax)})
		}
	}

	var irr []entities.IrrigationLogRow
	if err := db.Order("id ASC").Find(&irr).Error; err != nil {
		return nil, fmt.Errorf("query irrigation_logs: %w", err)
	}
	for _, r := range irr {
		if s := index[r.SiteID]; s != nil {
			s.IrrigationLogs = append(s.IrrigationLogs, entities.RawIrrigationLog{Date: r.Date, Water: fnum(r.Water)})
		}
	}

	var apps []entities.ApplicationLogRow
	if err := db.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("query application_logs: %w", err)
	}
	for _, r := range apps {
		if s := index[r.SiteID]; s != nil {
			s.ApplicationLogs = append(s.ApplicationLogs, entities.RawApplicationLog{Date: r.Date, Product: r.Product})
		}
	}

	var harv []entities.HarvestLogRow
	if err := db.Order("id ASC").Find(&harv).Error; err != nil {
		return nil, fmt.Errorf("query harvest_logs: %w", err)
	}
	for _, r := range harv {
		if s := index[r.SiteID]; s != nil {
			s.HarvestLogs = append(s.HarvestLogs, entities.RawHarvestLog{Date: r.Date, Weight: fnum(r.Weight)})
		}
	}

	var inc []entities.IncidentRow
	if err := db.Order("id ASC").Find(&inc).Error; err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}
	for _, r := range inc {
		if s := index[r.SiteID]; s != nil {
			s.Incidents = append(s.Incidents, entities.RawIncident{Description: r.Description})
		}
	}

	var staff []entities.PersonnelRow
	if err := db.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("query personnel_assignments: %w", err)
	}
	for _, r := range staff {
		if s := index[r.SiteID]; s != nil {
			s.Personnel = append(s.Personnel, entities.RawPersonnel{Name: r.Name, Task: r.Task})
		}
	}
	return out, nil
}

func fnum(v float64) json.Number { return json.Number(strconv.FormatFloat(v, 'f', -1, 64)) }

// SeedSQLite validates raws exactly as the server does at startup and writes
// only the sites that load. The report lists what was left out.
func SeedSQLite(db *gorm.DB, raws []entities.RawSite) (Report, error) {
	reg := repositoryImp.New()
	rep, err := Build(raws, reg)
	if err != nil {
		return rep, err
	}
	if err := database.Seed(db, reg.ListAll()); err != nil {
		return rep, fmt.Errorf("seed: %w", err)
	}
	return rep, nil
}
