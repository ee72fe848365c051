package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Employee rows
	Postgres PostgresConfig

	// Redis - Employee count cache
	Redis RedisConfig

	// Pagination - Employee listing
	Pagination PaginationConfig

	// Internal - Key for the /internal routes
	Internal InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PaginationConfig controls how employee listings are split into pages.
type PaginationConfig struct {
	PerPage             int
	Orphans             int
	AllowEmptyFirstPage bool
	CountCacheTTL       time.Duration
}

// InternalConfig is the configuration for internal routes
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Leave empty to disable the internal routes.
	InternalKey string
}

// Load loads configuration using Viper. An explicit path overrides the
// default search locations.
func Load(path ...string) (*Config, error) {
	v := viper.New()

	if len(path) > 0 && path[0] != "" {
		v.SetConfigFile(path[0])
	} else {
		v.SetConfigName("employees-config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/employees/")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Config file is optional; env vars and defaults still apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.Schema = v.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Pagination
	cfg.Pagination.PerPage = v.GetInt("pagination.per_page")
	cfg.Pagination.Orphans = v.GetInt("pagination.orphans")
	cfg.Pagination.AllowEmptyFirstPage = v.GetBool("pagination.allow_empty_first_page")
	cfg.Pagination.CountCacheTTL = v.GetDuration("pagination.count_cache_ttl")

	// Internal
	cfg.Internal.InternalKey = v.GetString("internal.internal_key")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.dbname", "employees")
	v.SetDefault("postgres.sslmode", "prefer")
	v.SetDefault("postgres.schema", "public")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Pagination
	v.SetDefault("pagination.per_page", 6)
	v.SetDefault("pagination.orphans", 0)
	v.SetDefault("pagination.allow_empty_first_page", true)
	v.SetDefault("pagination.count_cache_ttl", "1m")

	// Internal
	v.SetDefault("internal.internal_key", "")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Pagination.PerPage < 1 {
		return fmt.Errorf("pagination.per_page must be at least 1")
	}
	if cfg.Pagination.Orphans < 0 {
		return fmt.Errorf("pagination.orphans must not be negative")
	}
	if cfg.Pagination.CountCacheTTL < 0 {
		return fmt.Errorf("pagination.count_cache_ttl must not be negative")
	}

	return nil
}
