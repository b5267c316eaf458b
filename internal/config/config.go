// Package config loads liftlog settings from an optional TOML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendDatabase = "database"
	BackendRedis    = "redis"

	defaultAPIURL = "http://localhost:3000"
)

type Config struct {
	APIURL         string `toml:"api_url"`
	SessionBackend string `toml:"session_backend"`
	DBPath         string `toml:"db_path"`
	RedisURL       string `toml:"redis_url"`
	// logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	// CalendarURL is an iCal feed of planned workouts.
	CalendarURL string        `toml:"calendar_url"`
	HTTPTimeout time.Duration `toml:"http_timeout"`
	CatalogTTL  time.Duration `toml:"catalog_ttl"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development", "test":
		return t.Development, nil
	case "", "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		APIURL:         defaultAPIURL,
		SessionBackend: BackendDatabase,
		DBPath:         filepath.Join(dir, "liftlog", "session.db"),
		LogLevel:       "info",
		HTTPTimeout:    30 * time.Second,
		CatalogTTL:     5 * time.Minute,
	}
}

// Load reads the file named by LIFTLOG_CONFIG, if any, picks the section for
// ENV and applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("LIFTLOG_CONFIG"); path != "" {
		var t Toml
		md, err := toml.DecodeFile(path, &t)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		section, err := t.Get(os.Getenv("ENV"))
		if err != nil {
			return nil, err
		}
		if section != nil {
			name := "production"
			if section == t.Development {
				name = "development"
			}
			merge(cfg, section, func(key string) bool { return md.IsDefined(name, key) })
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// merge copies the non-empty strings of src into dst. Durations are copied
// whenever the file sets them, so "0s" can turn a feature off.
func merge(dst, src *Config, defined func(key string) bool) {
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.SessionBackend != "" {
		dst.SessionBackend = src.SessionBackend
	}
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.RedisURL != "" {
		dst.RedisURL = src.RedisURL
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	if src.CalendarURL != "" {
		dst.CalendarURL = src.CalendarURL
	}
	if defined("http_timeout") {
		dst.HTTPTimeout = src.HTTPTimeout
	}
	if defined("catalog_ttl") {
		dst.CatalogTTL = src.CatalogTTL
	}
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"LIFTLOG_API_URL":         &cfg.APIURL,
		"LIFTLOG_SESSION_BACKEND": &cfg.SessionBackend,
		"LIFTLOG_DB_PATH":         &cfg.DBPath,
		"REDIS_URL":               &cfg.RedisURL,
		"LIFTLOG_LOG_LEVEL":       &cfg.LogLevel,
		"LIFTLOG_LOG_FILE":        &cfg.LogFile,
		"LIFTLOG_CALENDAR_URL":    &cfg.CalendarURL,
	}
	for k, p := range strs {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			*p = v
		}
	}

	durs := map[string]*time.Duration{
		"LIFTLOG_HTTP_TIMEOUT": &cfg.HTTPTimeout,
		"LIFTLOG_CATALOG_TTL":  &cfg.CatalogTTL,
	}
	for k, p := range durs {
		v, ok := os.LookupEnv(k)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", k, err)
		}
		*p = d
	}
	return nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIURL)
	}
	switch c.SessionBackend {
	case BackendDatabase:
		if c.DBPath == "" {
			return errors.New("db path is required for the database session backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis session backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
	if c.HTTPTimeout < 0 || c.CatalogTTL < 0 {
		return errors.New("durations cannot be negative")
	}
	return nil
}

// BaseURL returns the parsed API URL.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}
