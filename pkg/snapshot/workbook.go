package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BorromeoLara/INVE/entities"
)

// Sheet names of a snapshot workbook. Only Sites is required.
const (
	SheetSites        = "Sites"
	SheetDaily        = "DailyLogs"
	SheetIrrigation   = "IrrigationLogs"
	SheetApplications = "ApplicationLogs"
	SheetHarvest      = "HarvestLogs"
	SheetIncidents    = "Incidents"
	SheetPersonnel    = "Personnel"
)

func LoadWorkbook(path string) ([]entities.RawSite, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	return readWorkbook(x)
}

func ReadWorkbook(r io.Reader) ([]entities.RawSite, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	return readWorkbook(x)
}

func readWorkbook(x *excelize.File) ([]entities.RawSite, error) {
	sites, err := readSheet(x, SheetSites, true)
	if err != nil {
		return nil, err
	}
	cID := sites.col("id", "siteid", "site")
	if cID == -1 {
		return nil, fmt.Errorf("%s sheet missing id column. Found headers: %v", SheetSites, sites.head)
	}
	cName := sites.col("name", "nombre")
	cLoc := sites.col("location", "ubicacion")
	cLat := sites.col("lat", "latitude", "latitud")
	cLon := sites.col("lon", "lng", "longitude", "longitud")
	cCrop := sites.col("croptype", "crop", "cultivo")
	cVar := sites.col("seedvariety", "variety", "variedad")
	cSow := sites.col("sowingdate", "sowing", "siembra")

	out := make([]entities.RawSite, 0, len(sites.rows))
	index := map[string]int{}
	for _, rec := range sites.rows {
		id := strings.TrimSpace(get(rec, cID))
		if id == "" {
			continue // blank spreadsheet row
		}
		// logs go to the first row with an id; Build rejects the later copies
		if _, seen := index[id]; !seen {
			index[id] = len(out)
		}
		out = append(out, entities.RawSite{
			ID:          id,
			Name:        get(rec, cName),
			Location:    get(rec, cLoc),
			Coordinates: entities.RawCoordinates{Lat: num(get(rec, cLat)), Lon: num(get(rec, cLon))},
			CropType:    get(rec, cCrop),
			SeedVariety: get(rec, cVar),
			SowingDate:  get(rec, cSow),
		})
	}

	// attach walks the rows of one log sheet and hands each row to add with
	// the site it belongs to.
	attach := func(sheet string, add func(s *entities.RawSite, sh *sheetData, rec []string)) error {
		sh, err := readSheet(x, sheet, false)
		if err != nil || sh == nil {
			return err
		}
		cSite := sh.col("siteid", "site", "id")
		if cSite == -1 {
			return fmt.Errorf("%s sheet missing site_id column. Found headers: %v", sheet, sh.head)
		}
		for n, rec := range sh.rows {
			id := strings.TrimSpace(get(rec, cSite))
			if id == "" {
				continue
			}
			i, ok := index[id]
			if !ok {
				log.Printf("[snapshot] %s row %d: unknown site %q, skipped", sheet, n+2, id)
				continue
			}
			add(&out[i], sh, rec)
		}
		return nil
	}

	steps := []struct {
		sheet string
		add   func(*entities.RawSite, *sheetData, []string)
	}{
		{SheetDaily, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.DailyLogs = append(s.DailyLogs, entities.RawDailyLog{
				Date:    get(rec, sh.col("date", "fecha")),
				TempMax: num(get(rec, sh.col("tempmax", "maxtemp", "temperaturamax"))),
			})
		}},
		{SheetIrrigation, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.IrrigationLogs = append(s.IrrigationLogs, entities.RawIrrigationLog{
				Date:  get(rec, sh.col("date", "fecha")),
				Water: num(get(rec, sh.col("water", "watervolume", "agua", "litros"))),
			})
		}},
		{SheetApplications, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.ApplicationLogs = append(s.ApplicationLogs, entities.RawApplicationLog{
				Date:    get(rec, sh.col("date", "fecha")),
				Product: get(rec, sh.col("product", "producto")),
			})
		}},
		{SheetHarvest, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.HarvestLogs = append(s.HarvestLogs, entities.RawHarvestLog{
				Date:   get(rec, sh.col("date", "fecha")),
				Weight: num(get(rec, sh.col("weight", "peso"))),
			})
		}},
		{SheetIncidents, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.Incidents = append(s.Incidents, entities.RawIncident{
				Description: get(rec, sh.col("description", "descripcion", "incident")),
			})
		}},
		{SheetPersonnel, func(s *entities.RawSite, sh *sheetData, rec []string) {
			s.Personnel = append(s.Personnel, entities.RawPersonnel{
				Name: get(rec, sh.col("name", "nombre")),
				Task: get(rec, sh.col("task", "tarea")),
			})
		}},
	}
	for _, st := range steps {
		if err := attach(st.sheet, st.add); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type sheetData struct {
	head []string
	hmap map[string]int
	rows [][]string
}

// col finds the first header matching any alias, -1 if none does.
func (s *sheetData) col(keys ...string) int {
	for _, k := range keys {
		if idx, ok := s.hmap[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

// readSheet returns nil for an optional sheet that does not exist.
func readSheet(x *excelize.File, name string, required bool) (*sheetData, error) {
	if idx, err := x.GetSheetIndex(name); err != nil || idx == -1 {
		if required {
			return nil, fmt.Errorf("workbook has no %s sheet", name)
		}
		return nil, nil
	}
	rows, err := x.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) == 0 {
		if required {
			return nil, fmt.Errorf("%s sheet is empty", name)
		}
		return nil, nil
	}
	sd := &sheetData{head: rows[0], hmap: map[string]int{}, rows: rows[1:]}
	for i, h := range rows[0] {
		sd.hmap[norm(h)] = i
	}
	return sd, nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// guard against short rows
func get(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func num(s string) json.Number { return json.Number(s) }
