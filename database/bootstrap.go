// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BorromeoLara/INVE/entities"
)

// OpenSQLite opens the snapshot database and makes sure every snapshot table
// exists, so an empty file reads as an empty roster instead of failing.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(entities.SnapshotModels()...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// Seed writes validated sites into the snapshot tables in one transaction.
// It takes constructed Sites rather than raw records so nothing that NewSite
// would reject can reach the database. The server never calls it.
func Seed(db *gorm.DB, sites []*entities.Site) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, s := range sites {
			c := s.Coordinates()
			row := entities.SiteRow{
				SiteID: s.ID(), Seq: i, Name: s.Name(), Location: s.Location(), Lat: c.Lat, Lon: c.Lon,
				CropType: s.CropType(), SeedVariety: s.SeedVariety(), SowingDate: s.SowingDate().String(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("site %s: %w", s.ID(), err)
			}
			for _, l := range s.DailyLogs() {
				if err := tx.Create(&entities.DailyLogRow{SiteID: s.ID(), Date: l.Date.String(), TempMax: l.TempMax}).Error; err != nil {
					return err
				}
			}
			for _, l := range s.IrrigationLogs() {
				if err := tx.Create(&entities.IrrigationLogRow{SiteID: s.ID(), Date: l.Date.String(), Water: l.WaterVolume}).Error; err != nil {
					return err
				}
			}
			for _, l := range s.ApplicationLogs() {
				if err := tx.Create(&entities.ApplicationLogRow{SiteID: s.ID(), Date: l.Date.String(), Product: l.Product}).Error; err != nil {
					return err
				}
			}
			for _, l := range s.HarvestLogs() {
				if err := tx.Create(&entities.HarvestLogRow{SiteID: s.ID(), Date: l.Date.String(), Weight: l.Weight}).Error; err != nil {
					return err
				}
			}
			for _, in := range s.Incidents() {
				if err := tx.Create(&entities.IncidentRow{SiteID: s.ID(), Description: in.Description}).Error; err != nil {
					return err
				}
			}
			for _, p := range s.Personnel() {
				if err := tx.Create(&entities.PersonnelRow{SiteID: s.ID(), Name: p.Name, Task: p.Task}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
