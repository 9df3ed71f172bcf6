package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	Port     string `env:"PORT,default=8080"`
	Timezone string `env:"TZ,default=America/Mexico_City"`

	// json | xlsx | sqlite
	SnapshotFormat string `env:"SNAPSHOT_FORMAT,default=json"`
	SnapshotPath   string `env:"SNAPSHOT_PATH,default=data/sites.json"`
	DBPath         string `env:"DB_PATH,default=inve.db"`

	// memory | redis
	SessionStore string        `env:"SESSION_STORE,default=memory"`
	RedisAddr    string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisDB      int           `env:"REDIS_DB,default=0"`
	SessionTTL   time.Duration `env:"SESSION_TTL,default=12h"`

	ChartWidth  int `env:"CHART_WIDTH,default=800"`
	ChartHeight int `env:"CHART_HEIGHT,default=300"`
}

func Load(ctx context.Context) (AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return AppConfig{}, fmt.Errorf("process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg, nil
}

func (c AppConfig) validate() error {
	switch c.SnapshotFormat {
	case "json", "xlsx", "sqlite":
	default:
		return fmt.Errorf("SNAPSHOT_FORMAT %q: want json, xlsx or sqlite", c.SnapshotFormat)
	}
	switch c.SessionStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_STORE %q: want memory or redis", c.SessionStore)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size %dx%d must be positive", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
