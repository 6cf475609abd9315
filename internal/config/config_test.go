package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err, "an explicit path must exist")

	// No explicit path: missing file falls back to defaults.
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.HorizonDays)
	assert.False(t, cfg.EveryOtherWeekGrace)
	assert.Equal(t, "memory", cfg.Geo.Locator)
	assert.Equal(t, domain.NewTimeOfDay(6, 0), cfg.Periods[domain.PeriodMorning].Start)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alacarte.yaml")
	body := `
db_path: /tmp/agencies.db
horizon_days: 30
every_other_week_grace: true
periods:
  morning: ["07:00", "10:59"]
geo:
  locator: redis
  redis_addr: "redis:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/agencies.db", cfg.DBPath)
	assert.Equal(t, 30, cfg.HorizonDays)
	assert.True(t, cfg.EveryOtherWeekGrace)
	assert.Equal(t, "redis", cfg.Geo.Locator)
	assert.Equal(t, "redis:6379", cfg.Geo.RedisAddr)

	// Overridden period changes; the others keep their defaults.
	assert.Equal(t, domain.NewTimeOfDay(7, 0), cfg.Periods[domain.PeriodMorning].Start)
	assert.Equal(t, domain.NewTimeOfDay(10, 59), cfg.Periods[domain.PeriodMorning].End)
	assert.Equal(t, domain.NewTimeOfDay(12, 0), cfg.Periods[domain.PeriodAfternoon].Start)
}

func TestLoad_RejectsBadPeriods(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		body string
	}{
		{"unknown period", "periods:\n  brunch: [\"10:00\", \"11:00\"]\n"},
		{"wrong arity", "periods:\n  morning: [\"10:00\"]\n"},
		{"unparseable time", "periods:\n  morning: [\"tenish\", \"11:00\"]\n"},
		{"reversed window", "periods:\n  morning: [\"11:00\", \"10:00\"]\n"},
		{"bad horizon", "horizon_days: -1\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, tc.name)
	}
}
