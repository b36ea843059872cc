package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "app"
password = "secret"
dbname = "schedule"

[schedule]
open_time = "09:00"
close_time = "18:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "logs/app.log", cfg.Logs.File)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	policy, err := cfg.SchedulePolicy()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), policy.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), policy.CloseTime)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)

	policy, err := cfg.SchedulePolicy()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), policy.OpenTime)
	assert.Equal(t, types.TimeString("19:30"), policy.CloseTime)
	assert.Equal(t, 20, policy.BookingMarginMinutes)
	assert.Equal(t, 40, policy.SlotDurationMinutes)
	assert.Equal(t, 5, policy.SlotStepMinutes)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed open_time", content: "[schedule]\nopen_time = \"9am\"\n"},
		{name: "close before open", content: "[schedule]\nopen_time = \"18:00\"\nclose_time = \"09:00\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "schedule",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=schedule sslmode=disable",
		cfg.DSN())
}
