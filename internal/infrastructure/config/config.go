package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

// JWTConfig holds the token signing settings. The secret has no default
// on purpose.
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET"`
	Algorithm        string `env:"JWT_ALGORITHM,            default=HS256"`
	AccessTTLMinutes int    `env:"ACCESS_TOKEN_TTL_MINUTES, default=30"`
	RefreshTTLDays   int    `env:"REFRESH_TOKEN_TTL_DAYS,   default=7"`
}

// AccessTTL returns the access-token lifetime as a duration.
func (j JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh-token lifetime as a duration.
func (j JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshTTLDays) * 24 * time.Hour
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// ThrottleConfig controls the failed-login lockout window.
type ThrottleConfig struct {
	MaxFailures    int `env:"LOGIN_MAX_FAILURES,     default=5"`
	LockoutMinutes int `env:"LOGIN_LOCKOUT_MINUTES,  default=15"`
}

// LockoutWindow returns the lockout window as a duration.
func (t ThrottleConfig) LockoutWindow() time.Duration {
	return time.Duration(t.LockoutMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
