// Package snapshot reads site snapshots (JSON, XLSX or SQLite) and builds the
// roster from them. A malformed site is skipped and reported; it never stops
// the rest of the snapshot from loading.
package snapshot

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/BorromeoLara/INVE/database"
	"github.com/BorromeoLara/INVE/entities"
)

type Registrar interface {
	Register(*entities.Site) error
}

type Rejection struct {
	Index  int    `json:"index"`
	SiteID string `json:"site_id"`
	Err    error  `json:"-"`
	Reason string `json:"reason"`
}

type Report struct {
	Loaded   int         `json:"loaded"`
	Rejected []Rejection `json:"rejected"`
}

// Build validates each raw site and registers the valid ones in input order.
// Validation and duplicate-id failures are collected in the report; any other
// registry error aborts.
func Build(raws []entities.RawSite, reg Registrar) (Report, error) {
	rep := Report{Rejected: []Rejection{}}
	for i, raw := range raws {
		site, err := entities.NewSite(raw)
		if err == nil {
			err = reg.Register(site)
		}
		if err == nil {
			rep.Loaded++
			continue
		}
		if !rejectable(err) {
			return rep, fmt.Errorf("site #%d: %w", i, err)
		}
		log.Printf("[snapshot] skip site #%d: %v", i, err)
		rep.Rejected = append(rep.Rejected, Rejection{Index: i, SiteID: raw.ID, Err: err, Reason: err.Error()})
	}
	log.Printf("[snapshot] loaded=%d rejected=%d", rep.Loaded, len(rep.Rejected))
	return rep, nil
}

// dup is satisfied by the registry's DuplicateIdentifierError without this
// package importing the registry.
type dup interface{ DuplicateID() string }

func rejectable(err error) bool {
	var ve *entities.ValidationError
	var d dup
	return errors.As(err, &ve) || errors.As(err, &d)
}

const (
	FormatJSON   = "json"
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

// Source is a raw snapshot plus the database it came from, if any.
type Source struct {
	Sites []entities.RawSite
	DB    *gorm.DB
}

// Read dispatches on format. For sqlite, path is the database file and the
// open handle is returned in Source.DB for health checks.
func Read(format, path string) (Source, error) {
	switch format {
	case FormatJSON:
		sites, err := LoadJSONFile(path)
		return Source{Sites: sites}, err
	case FormatXLSX:
		sites, err := LoadWorkbook(path)
		return Source{Sites: sites}, err
	case FormatSQLite:
		db, err := database.OpenSQLite(path)
		if err != nil {
			return Source{}, err
		}
		sites, err := LoadSQLite(db)
		return Source{Sites: sites, DB: db}, err
	}
	return Source{}, fmt.Errorf("unknown snapshot format %q", format)
}
