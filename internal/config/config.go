package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MaxForecastDays keeps a forecast reply within Discord's limit of ten
// embeds per message, one of which may be the alert banner.
const MaxForecastDays = 9

// MaxViewTimeout is the lifetime of a Discord interaction token. A view kept
// open longer could no longer strip its own buttons.
const MaxViewTimeout = 15 * time.Minute

type Config struct {
	Token             string        `env:"DISCORD_BOT_TOKEN"`
	TestGuildID       string        `env:"TEST_GUILD_ID"`
	WeatherAPIKey     string        `env:"WEATHER_API_KEY"`
	WeatherAPIBaseURL string        `env:"WEATHER_API_BASE_URL" envDefault:"https://api.weatherapi.com/v1"`
	WeatherAPITimeout time.Duration `env:"WEATHER_API_TIMEOUT" envDefault:"10s"`
	ForecastDays      int           `env:"WEATHER_FORECAST_DAYS" envDefault:"3"`
	LocalesDir        string        `env:"LOCALES_DIR" envDefault:"locales"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	MigrationsPath    string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	ViewTimeout       time.Duration `env:"VIEW_TIMEOUT" envDefault:"180s"`
	CommandCooldown   time.Duration `env:"COMMAND_COOLDOWN" envDefault:"5s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, envError(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envError names the variable behind a value env could not parse; env itself
// reports the struct field.
func envError(err error) error {
	var pe env.ParseError
	if !errors.As(err, &pe) {
		return fmt.Errorf("config: %w", err)
	}
	name := pe.Name
	if field, ok := reflect.TypeOf(Config{}).FieldByName(pe.Name); ok {
		if tag := field.Tag.Get("env"); tag != "" {
			name = tag
		}
	}
	return fmt.Errorf("config: %s invalid: %w", name, pe.Err)
}

// Development reports whether commands are synced to a single test guild.
func (c *Config) Development() bool {
	return c.TestGuildID != ""
}

// validate applies every rule to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_BOT_TOKEN is required")
	}

	if strings.TrimSpace(c.WeatherAPIKey) == "" {
		return fmt.Errorf("config: WEATHER_API_KEY is required")
	}

	for _, r := range c.TestGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: TEST_GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	if c.ForecastDays < 1 || c.ForecastDays > MaxForecastDays {
		return fmt.Errorf("config: WEATHER_FORECAST_DAYS must be between 1 and %d, got %d", MaxForecastDays, c.ForecastDays)
	}

	for name, d := range map[string]time.Duration{
		"WEATHER_API_TIMEOUT": c.WeatherAPITimeout,
		"VIEW_TIMEOUT":        c.ViewTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	if c.ViewTimeout > MaxViewTimeout {
		return fmt.Errorf("config: VIEW_TIMEOUT cannot exceed %s, got %s", MaxViewTimeout, c.ViewTimeout)
	}
	if c.CommandCooldown < 0 {
		return fmt.Errorf("config: COMMAND_COOLDOWN cannot be negative")
	}

	base, err := url.Parse(c.WeatherAPIBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("config: WEATHER_API_BASE_URL invalid (%q)", c.WeatherAPIBaseURL)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Without a database, home cities are kept in memory.
		c.DatabaseURL = ""
		return nil
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
