package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Amund211/savewatch/internal/constants"
	"github.com/caarlos0/env/v11"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

type rawConfig struct {
	SaveSource      string        `env:"SAVEWATCH_SAVE_SOURCE"`
	RefreshInterval time.Duration `env:"SAVEWATCH_REFRESH_INTERVAL" envDefault:"5s"`
	RefreshTimeout  time.Duration `env:"SAVEWATCH_REFRESH_TIMEOUT"  envDefault:"10s"`
	Port            string        `env:"PORT"                       envDefault:"8080"`
	SentryDSN       string        `env:"SENTRY_DSN"`
	AllowedOrigins  []string      `env:"SAVEWATCH_ALLOWED_ORIGINS"  envSeparator:","`
	PublicURL       string        `env:"SAVEWATCH_PUBLIC_URL"`
	OTelEnabled     bool          `env:"SAVEWATCH_OTEL_ENABLED"     envDefault:"false"`
	StdinTrigger    bool          `env:"SAVEWATCH_STDIN_TRIGGER"    envDefault:"false"`
}

type Config struct {
	saveSource      string
	refreshInterval time.Duration
	refreshTimeout  time.Duration
	port            string
	sentryDSN       string
	allowedOrigins  []string
	publicURL       string
	oTelEnabled     bool
	stdinTrigger    bool
	env             environment
}

func (c *Config) SaveSource() string {
	return c.saveSource
}

func (c *Config) RefreshInterval() time.Duration {
	return c.refreshInterval
}

func (c *Config) RefreshTimeout() time.Duration {
	return c.refreshTimeout
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

// Domain suffixes allowed to make cross origin requests
func (c *Config) AllowedOrigins() []string {
	return append([]string(nil), c.allowedOrigins...)
}

// The dashboard URL to encode in the QR code. Empty when not configured.
func (c *Config) PublicURL() string {
	return c.publicURL
}

func (c *Config) OTelEnabled() bool {
	return c.oTelEnabled
}

func (c *Config) StdinTrigger() bool {
	return c.stdinTrigger
}

func (c *Config) EnvironmentName() string {
	return string(c.env)
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, saveSource: %s, refreshInterval: %s, refreshTimeout: %s, port: %s, otelEnabled: %t, stdinTrigger: %t, ...}",
		string(c.env),
		c.saveSource,
		c.refreshInterval,
		c.refreshTimeout,
		c.port,
		c.oTelEnabled,
		c.stdinTrigger,
	)
}

// SaveSourceFromEnv returns the configured save source, or the default
func SaveSourceFromEnv() string {
	source := strings.TrimSpace(os.Getenv("SAVEWATCH_SAVE_SOURCE"))
	if source == "" {
		return constants.DEFAULT_SAVE_SOURCE
	}
	return source
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}
	invalidKey := func(key string, value any) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s (%v)", ErrInvalidValue, key, value)
	}

	var environ environment
	rawEnv, ok := os.LookupEnv("SAVEWATCH_ENVIRONMENT")
	if !ok {
		return missingKey("SAVEWATCH_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		environ = production
	case "staging":
		environ = staging
	case "development":
		environ = development
	default:
		return invalidKey("SAVEWATCH_ENVIRONMENT", rawEnv)
	}
	if string(environ) == "" {
		panic("logic error: env is empty")
	}

	var raw rawConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	if raw.RefreshInterval <= 0 {
		return invalidKey("SAVEWATCH_REFRESH_INTERVAL", raw.RefreshInterval)
	}
	if raw.RefreshTimeout <= 0 {
		return invalidKey("SAVEWATCH_REFRESH_TIMEOUT", raw.RefreshTimeout)
	}

	port, err := strconv.Atoi(raw.Port)
	if err != nil || port <= 0 || port > 65535 {
		return invalidKey("PORT", raw.Port)
	}

	if raw.PublicURL != "" {
		publicURL, err := url.Parse(raw.PublicURL)
		if err != nil || (publicURL.Scheme != "http" && publicURL.Scheme != "https") || publicURL.Host == "" {
			return invalidKey("SAVEWATCH_PUBLIC_URL", raw.PublicURL)
		}
	}

	allowedOrigins := make([]string, 0, len(raw.AllowedOrigins))
	for _, origin := range raw.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		allowedOrigins = append(allowedOrigins, origin)
	}

	saveSource := strings.TrimSpace(raw.SaveSource)
	if saveSource == "" {
		saveSource = constants.DEFAULT_SAVE_SOURCE
	}

	if environ == production || environ == staging {
		if raw.SentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		saveSource:      saveSource,
		refreshInterval: raw.RefreshInterval,
		refreshTimeout:  raw.RefreshTimeout,
		port:            raw.Port,
		sentryDSN:       raw.SentryDSN,
		allowedOrigins:  allowedOrigins,
		publicURL:       raw.PublicURL,
		oTelEnabled:     raw.OTelEnabled,
		stdinTrigger:    raw.StdinTrigger,
		env:             environ,
	}, nil
}
