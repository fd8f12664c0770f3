package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"APP_PORT" envDefault:"3000"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DATABASE_HOST" envDefault:"localhost"`
	DBPort      string `env:"DATABASE_PORT" envDefault:"5432"`
	DBUser      string `env:"DATABASE_USER" envDefault:"app_user"`
	DBPassword  string `env:"DATABASE_PASSWORD" envDefault:"secure_password"`
	DBName      string `env:"DATABASE_NAME" envDefault:"project_management"`
	DBSSLMode   string `env:"DATABASE_SSLMODE" envDefault:"disable"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// JWTSecret signs bearer tokens. Override it outside development.
	JWTSecret string        `env:"JWT_SECRET" envDefault:"supersecurekey"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`

	OriginURL string `env:"ORIGIN_URL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %s", c.JWTExpiry)
	}
	if c.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN returns DATABASE_URL when set, otherwise a URL built from the
// individual DATABASE_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
