package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/BorromeoLara/INVE/pkg/site/repository"
)

var appStart = time.Now()

// Pinger is anything with a liveness probe, e.g. the redis session store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	sites    repository.SiteRepository
	db       *gorm.DB // nil unless the snapshot came from sqlite
	sessions Pinger   // nil for the in-memory store
}

func NewHealthCtrl(sites repository.SiteRepository, db *gorm.DB, sessions Pinger) *HealthCtrl {
	return &HealthCtrl{sites: sites, db: db, sessions: sessions}
}

type sub struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Err     string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true, Skipped: h.db == nil}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	}

	sess := sub{OK: true, Skipped: h.sessions == nil}
	if h.sessions != nil {
		if err := h.sessions.Ping(ctx); err != nil {
			sess = sub{Err: "ping: " + err.Error()}
		}
	}

	allOK := db.OK && sess.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"sites":      h.sites.Len(),
		"checks": map[string]any{
			"database": db,
			"sessions": sess,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
