package config

import (
	"errors"
	"log/slog"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey  = "NUMBEO_API_KEY"
	EnvBaseURL = "NUMBEO_BASE_URL"
)

// ErrInvalid matches every configuration error via errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// Error reports a missing or invalid configuration field.
// It is always detected before any network call is made.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + " " + e.Message
}

// Is reports whether target is ErrInvalid.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Config is the root configuration for one CLI run.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Query  QueryConfig  `yaml:"query"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds Numbeo API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // Sent as the api_key query parameter
	Timeout time.Duration `yaml:"timeout"`
}

// QueryConfig identifies the city to price.
type QueryConfig struct {
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// OutputConfig controls the rendered table.
type OutputConfig struct {
	DataPoints bool `yaml:"data_points"` // Append a Data Points column
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Overrides carries values given on the command line. Empty strings and
// zero durations leave the underlying value untouched.
type Overrides struct {
	City       string
	Country    string
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	DataPoints bool
	LogLevel   string
}

// CityQuery returns the combined "City, Country" string sent to the price endpoint.
func (c *Config) CityQuery() string {
	return c.Query.City + ", " + c.Query.Country
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}

// ApplyEnv takes the API key and base URL from the environment when set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.API.APIKey = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
}

// ApplyOverrides lets command-line values win over every other source.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.City != "" {
		c.Query.City = o.City
	}
	if o.Country != "" {
		c.Query.Country = o.Country
	}
	if o.APIKey != "" {
		c.API.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		c.API.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		c.API.Timeout = o.Timeout
	}
	if o.DataPoints {
		c.Output.DataPoints = true
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}
