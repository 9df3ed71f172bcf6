package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, AppConfig)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "json", cfg.SnapshotFormat)
				assert.Equal(t, "data/sites.json", cfg.SnapshotPath)
				assert.Equal(t, "inve.db", cfg.DBPath)
				assert.Equal(t, "memory", cfg.SessionStore)
				assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
				assert.Equal(t, 800, cfg.ChartWidth)
				assert.Equal(t, 300, cfg.ChartHeight)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"PORT":            "9000",
				"SNAPSHOT_FORMAT": "sqlite",
				"DB_PATH":         "/tmp/sites.db",
				"SESSION_STORE":   "redis",
				"REDIS_ADDR":      "cache:6379",
				"SESSION_TTL":     "30m",
				"CHART_WIDTH":     "640",
			},
			validate: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, "sqlite", cfg.SnapshotFormat)
				assert.Equal(t, "/tmp/sites.db", cfg.DBPath)
				assert.Equal(t, "redis", cfg.SessionStore)
				assert.Equal(t, "cache:6379", cfg.RedisAddr)
				assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
				assert.Equal(t, 640, cfg.ChartWidth)
			},
		},
		{
			name:        "unknown snapshot format",
			envVars:     map[string]string{"SNAPSHOT_FORMAT": "csv"},
			expectError: true,
		},
		{
			name:        "unknown session store",
			envVars:     map[string]string{"SESSION_STORE": "memcached"},
			expectError: true,
		},
		{
			name:        "bad chart size",
			envVars:     map[string]string{"CHART_HEIGHT": "0"},
			expectError: true,
		},
		{
			name:        "bad duration",
			envVars:     map[string]string{"SESSION_TTL": "soon"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(context.Background(), envconfig.MapLookuper(tt.envVars))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
