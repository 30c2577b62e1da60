package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL  = "https://www.numbeo.com"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
	DefaultEnvFile  = ".env"
)

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
