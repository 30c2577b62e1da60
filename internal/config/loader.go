package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Field: "config", Message: fmt.Sprintf("cannot be read: %v", err)}
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, &Error{Field: "config", Message: fmt.Sprintf("is not valid yaml: %v", err)}
	}

	return &cfg, nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. A missing file is not an error; variables that are
// already set keep their value.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return &Error{Field: "env file", Message: fmt.Sprintf("%s cannot be loaded: %v", path, err)}
	}
	return nil
}

// Sources lists where Resolve reads configuration from.
type Sources struct {
	ConfigPath string // Optional YAML file
	EnvFile    string // Optional .env file
	Flags      Overrides
}

// Resolve builds the run configuration from every source, applies
// defaults and validates it.
func Resolve(src Sources) (*Config, error) {
	if err := LoadDotEnv(src.EnvFile); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if src.ConfigPath != "" {
		loaded, err := Load(src.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(os.LookupEnv)
	cfg.ApplyOverrides(src.Flags)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
