package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionTTL is the bearer-token lifetime (canonical: 14 days).
	SessionTTL time.Duration `env:"SESSION_TTL, default=336h"`

	Admin SeedAdminConfig
	Staff SeedStaffConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// SeedAdminConfig is the protected admin account created on first start.
type SeedAdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin"`
}

// SeedStaffConfig optionally seeds one staff account. Left empty, no staff
// user is created.
type SeedStaffConfig struct {
	Username string `env:"STAFF_USERNAME"`
	Password string `env:"STAFF_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=queue_calling"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
