package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "coach.db")
	t.Setenv("APP_TIMEZONE", "Asia/Taipei")

	cfg := Load()
	assert.Equal(t, "coach.db", cfg.DatabaseURL)
	assert.Equal(t, "Asia/Taipei", cfg.Timezone)
	assert.Equal(t, "Asia/Taipei", cfg.Location().String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_MODE", "prod")
	t.Setenv("REMINDER_INTERVAL", "15m")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, 15*time.Minute, cfg.ReminderInterval)
}

func TestReminderIntervalFallback(t *testing.T) {
	t.Setenv("REMINDER_INTERVAL", "soon")
	assert.Equal(t, time.Hour, Load().ReminderInterval)

	t.Setenv("REMINDER_INTERVAL", "-5m")
	assert.Equal(t, time.Hour, Load().ReminderInterval)
}

func TestLocationFallsBackToLocal(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.Local, cfg.Location())
}
