package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
// Every failure is a *Error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Query.City) == "" {
		return &Error{Field: "city", Message: "is required (pass --city)"}
	}
	if strings.TrimSpace(c.Query.Country) == "" {
		return &Error{Field: "country", Message: "is required (pass --country)"}
	}
	if strings.TrimSpace(c.API.APIKey) == "" {
		return &Error{Field: "api key", Message: "is required (pass --api-key or set " + EnvAPIKey + " in .env)"}
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &Error{Field: "api.base_url", Message: fmt.Sprintf("must be an absolute URL, got %q", c.API.BaseURL)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &Error{Field: "api.base_url", Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme)}
	}

	if c.API.Timeout <= 0 {
		return &Error{Field: "api.timeout", Message: fmt.Sprintf("must be positive, got %s", c.API.Timeout)}
	}

	if _, err := c.SlogLevel(); err != nil {
		return &Error{Field: "log.level", Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", c.Log.Level)}
	}

	return nil
}
