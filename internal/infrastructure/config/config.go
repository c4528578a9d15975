package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const EnvProduction = "production"

// Config is built once at startup and passed explicitly to the components
// that need it. Nothing reads the environment after Load returns.
type Config struct {
	Port     string `env:"SERVER_PORT, default=8080"`
	Env      string `env:"NODE_ENV,    default=development"`
	LogLevel string `env:"LOG_LEVEL"`

	JWTSecret string `env:"JWT_SECRET, required"`
	// LegacyAdminToken is the static bearer token older deployments used for
	// admin routes. It is read only so startup can warn that it is ignored.
	LegacyAdminToken string `env:"ADMIN_TOKEN"`

	HashWorkers        int           `env:"HASH_WORKERS,         default=4"`
	MessageDedupWindow time.Duration `env:"MESSAGE_DEDUP_WINDOW, default=10m"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URL,     default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB_NAME, default=portfolio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// AdminConfig describes an optional admin account created at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
	Email    string `env:"ADMIN_EMAIL"`
}

// Enabled reports whether an admin account should be bootstrapped.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
