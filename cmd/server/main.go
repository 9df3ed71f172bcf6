package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/BorromeoLara/INVE/config"
	"github.com/BorromeoLara/INVE/router"

	// Health
	healthCtrlImp "github.com/BorromeoLara/INVE/pkg/health/controllerImp"

	// Navigation
	navCtrlImp "github.com/BorromeoLara/INVE/pkg/navigation/controllerImp"
	"github.com/BorromeoLara/INVE/pkg/session"
	"github.com/BorromeoLara/INVE/pkg/view"

	// Sites
	siteCtrlImp "github.com/BorromeoLara/INVE/pkg/site/controllerImp"
	siteRepoImp "github.com/BorromeoLara/INVE/pkg/site/repositoryImp"
	"github.com/BorromeoLara/INVE/pkg/snapshot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1) Config
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("[cfg] timezone %q: %v", cfg.Timezone, err)
	}

	// 2) Snapshot. For sqlite the path is the database file.
	path := cfg.SnapshotPath
	if cfg.SnapshotFormat == snapshot.FormatSQLite {
		path = cfg.DBPath
	}
	src, err := snapshot.Read(cfg.SnapshotFormat, path)
	if err != nil {
		log.Fatalf("snapshot %s %s: %v", cfg.SnapshotFormat, path, err)
	}

	// 3) Registry
	reg := siteRepoImp.New()
	rep, err := snapshot.Build(src.Sites, reg)
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	if len(rep.Rejected) > 0 {
		log.Printf("WARN: %d site(s) rejected, see [snapshot] lines above", len(rep.Rejected))
	}

	// 4) Session store
	var (
		store  session.Store
		pinger healthCtrlImp.Pinger
	)
	switch cfg.SessionStore {
	case "redis":
		client, err := session.NewRedisClient(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("session store: %v", err)
		}
		defer client.Close()
		rs := session.NewRedisStore(client, cfg.SessionTTL)
		store, pinger = rs, rs
	default:
		store = session.NewMemoryStore()
	}
	mgr := session.NewManager(reg, store)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 6) Controllers + router
	sCtrl := siteCtrlImp.New(reg, cfg.ChartWidth, cfg.ChartHeight)
	nCtrl := navCtrlImp.New(mgr, view.Composer{Sites: reg})
	hCtrl := healthCtrlImp.NewHealthCtrl(reg, src.DB, pinger)
	r := router.New(e, sCtrl, nCtrl, hCtrl)

	// 7) Start
	go func() {
		log.Printf("listening on :%s (%d sites)", cfg.Port, reg.Len())
		if err := r.Start(":" + cfg.Port); err != nil {
			log.Printf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
