package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "assignd.db"
)

type Config struct {
	DBPath                  string `toml:"db_path"`
	DefaultSubjectFilter    string `toml:"default_subject_filter"`
	ReminderIntervalSeconds int    `toml:"reminder_interval_seconds"`
	ReminderPolicy          string `toml:"reminder_policy"`
	DesktopNotifications    bool   `toml:"desktop_notifications"`
	SeedSamples             bool   `toml:"seed_samples"`
}

func Default() Config {
	return Config{
		DBPath:                  DefaultDBName,
		DefaultSubjectFilter:    "all",
		ReminderIntervalSeconds: 60,
		ReminderPolicy:          "every_tick",
		DesktopNotifications:    false,
		SeedSamples:             true,
	}
}

// LoadOrCreate reads the TOML config at path, writing the defaults there
// first when the file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.ReminderIntervalSeconds <= 0 {
		cfg.ReminderIntervalSeconds = 60
	}
	return cfg, nil
}

// FromEnv layers ASSIGND_* environment overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("ASSIGND_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("ASSIGND_REMINDER_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.ReminderIntervalSeconds = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("ASSIGND_REMINDER_POLICY"))); v != "" {
		cfg.ReminderPolicy = v
	}
	if v, ok := getEnvBool("ASSIGND_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvBool("ASSIGND_SEED_SAMPLES"); ok {
		cfg.SeedSamples = v
	}
	return cfg
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
