package config

import (
	"os"
	"time"
	_ "time/tzdata"
)

type Config struct {
	DatabaseURL       string
	Port              string
	Timezone          string
	LogMode           string
	FCMServiceAccount string
	ReminderInterval  time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", "coach.db"),
		Port:              getEnv("PORT", "8080"),
		Timezone:          getEnv("APP_TIMEZONE", "Asia/Taipei"),
		LogMode:           getEnv("LOG_MODE", "dev"),
		FCMServiceAccount: getEnv("FCM_SERVICE_ACCOUNT", ""),
		ReminderInterval:  getDuration("REMINDER_INTERVAL", time.Hour),
	}
}

// Location resolves the configured time zone. Day keys are formatted in it,
// so an unknown zone falls back to the machine's local zone instead of UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
