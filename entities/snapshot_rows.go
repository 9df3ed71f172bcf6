package entities

// Snapshot tables read by the SQLite loader. Dates are stored as YYYY-MM-DD
// text; the loader hands them to NewSite unparsed.

type SiteRow struct {
	SiteID      string  `gorm:"primaryKey" json:"site_id"`
	Seq         int     `gorm:"index" json:"seq"` // roster order
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CropType    string  `json:"crop_type"`
	SeedVariety string  `json:"seed_variety"`
	SowingDate  string  `json:"sowing_date"`
}

func (SiteRow) TableName() string { return "sites" }

type DailyLogRow struct {
	ID      uint    `gorm:"primaryKey"`
	SiteID  string  `gorm:"index" json:"site_id"`
	Date    string  `json:"date"`
	TempMax float64 `json:"temp_max"`
}

func (DailyLogRow) TableName() string { return "daily_logs" }

type IrrigationLogRow struct {
	ID     uint    `gorm:"primaryKey"`
	SiteID string  `gorm:"index" json:"site_id"`
	Date   string  `json:"date"`
	Water  float64 `json:"water"`
}

func (IrrigationLogRow) TableName() string { return "irrigation_logs" }

type ApplicationLogRow struct {
	ID      uint   `gorm:"primaryKey"`
	SiteID  string `gorm:"index" json:"site_id"`
	Date    string `json:"date"`
	Product string `json:"product"`
}

func (ApplicationLogRow) TableName() string { return "application_logs" }

type HarvestLogRow struct {
	ID     uint    `gorm:"primaryKey"`
	SiteID string  `gorm:"index" json:"site_id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

func (HarvestLogRow) TableName() string { return "harvest_logs" }

type IncidentRow struct {
	ID          uint   `gorm:"primaryKey"`
	SiteID      string `gorm:"index" json:"site_id"`
	Description string `json:"description"`
}

func (IncidentRow) TableName() string { return "incidents" }

type PersonnelRow struct {
	ID     uint   `gorm:"primaryKey"`
	SiteID string `gorm:"index" json:"site_id"`
	Name   string `json:"name"`
	Task   string `json:"task"`
}

func (PersonnelRow) TableName() string { return "personnel_assignments" }

// SnapshotModels lists every snapshot table in migration order.
func SnapshotModels() []any {
	return []any{
		&SiteRow{},
		&DailyLogRow{},
		&IrrigationLogRow{},
		&ApplicationLogRow{},
		&HarvestLogRow{},
		&IncidentRow{},
		&PersonnelRow{},
	}
}
