package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ZacxDev/storefront/utils"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPort            = "9010"
	DefaultOrigin          = "http://localhost:9010"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultCacheTTL        = 10 * time.Minute
	DefaultLogLevel        = "info"
)

// LoadEnv loads .env style files into the process environment. Missing
// files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load env file %s", f)
		}
	}
	return nil
}

// Load reads the YAML file at path (optional), applies environment
// overrides and defaults, and validates the result.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrapf(err, "read config %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Origin, "APP_ORIGIN")
	setString(&c.Server.PreviewBaseURL, "PREVIEW_BASE_URL")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Store.DSN, "DATABASE_URL")
	setString(&c.Cache.RedisAddress, "REDIS_ADDRESS")
	setString(&c.Cache.RedisPassword, "REDIS_PASSWORD")

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "REDIS_DB must be an integer")
		}
		c.Cache.RedisDB = db
	}

	if c.Store.DSN != "" && c.Store.Driver == "" {
		c.Store.Driver = DriverPostgres
	}
	return nil
}

func (c *AppConfig) SetDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Server.Origin == "" {
		c.Server.Origin = DefaultOrigin
	}
	if c.Server.PreviewBaseURL == "" {
		c.Server.PreviewBaseURL = c.Server.Origin + "/preview"
	}
	if c.Server.BaseDomain == "" {
		c.Server.BaseDomain = utils.DefaultBaseDomain
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DriverMemory
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
}

func (c *AppConfig) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.Errorf("server.port %q is not a number", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DSN == "" {
			return errors.New("store.dsn is required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	return nil
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
