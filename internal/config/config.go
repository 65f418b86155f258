package config

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"control_tower_echo/internal/navigation"
)

// HandoffMode selects how the landing page reaches the dashboard
type HandoffMode string

const (
	// HandoffClient renders the loading page and navigates from a client script
	HandoffClient HandoffMode = "client"
	// HandoffServer answers the landing request with a 307 redirect
	HandoffServer HandoffMode = "server"
)

// Config is the server configuration read from the environment
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"web/static"`
	DashboardPath   string        `env:"DASHBOARD_PATH" envDefault:"/logistics-app.html"`
	HandoffMode     HandoffMode   `env:"HANDOFF_MODE" envDefault:"client"`
	SiteTitle       string        `env:"SITE_TITLE" envDefault:"Logistics Control Tower v2.5"`
	SiteDescription string        `env:"SITE_DESCRIPTION" envDefault:"Weather-aware vessel schedule dashboard"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"control-tower-web"`
	OTelEnabled     bool          `env:"OTEL_ENABLED" envDefault:"true"`
	OTelEndpoint    string        `env:"OTEL_EXPORTER_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Overrides are command-line values that take precedence over the environment.
// Empty fields leave the environment value in place.
type Overrides struct {
	Port      string
	StaticDir string
}

func (o Overrides) apply(cfg *Config) {
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.StaticDir != "" {
		cfg.StaticDir = o.StaticDir
	}
}

// Load reads an optional .env file and then parses the environment
func Load(o Overrides) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return Parse(o)
}

// Parse reads the configuration from the process environment, applies o
// and validates the result
func Parse(o Overrides) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	o.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express
func (c Config) Validate() error {
	switch c.HandoffMode {
	case HandoffClient, HandoffServer:
	default:
		return fmt.Errorf("invalid HANDOFF_MODE %q: want %q or %q", c.HandoffMode, HandoffClient, HandoffServer)
	}

	if _, err := navigation.NewIntent(c.DashboardPath); err != nil {
		return fmt.Errorf("invalid DASHBOARD_PATH: %w", err)
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: want a number from 0 to 65535", c.Port)
	}
	if c.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// DashboardIntent returns the validated hand-off destination
func (c Config) DashboardIntent() navigation.Intent {
	return navigation.MustIntent(c.DashboardPath)
}

// Addr returns the listen address for Port
func (c Config) Addr() string {
	return ":" + c.Port
}
