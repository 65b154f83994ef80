package config

import (
	"time"

	"github.com/ZacxDev/storefront/logger"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging logger.Config `yaml:"logging"`
	Store   StoreConfig   `yaml:"store"`
	Cache   CacheConfig   `yaml:"cache"`
	Render  RenderConfig  `yaml:"render"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Origin          string        `yaml:"origin"`
	PreviewBaseURL  string        `yaml:"preview_base_url"`
	BaseDomain      string        `yaml:"base_domain"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	SeedFile string `yaml:"seed_file"`
}

type CacheConfig struct {
	RedisAddress  string        `yaml:"redis_address"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

type RenderConfig struct {
	Minify bool   `yaml:"minify"`
	Brand  string `yaml:"brand"`
}
