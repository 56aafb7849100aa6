// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration. Every field can also be set per
// invocation: the --api-url flag and TICKETHUB_API_URL take precedence
// over the file's api_url, in that order.
type Config struct {
	// APIURL is the base URL of the booking backend.
	APIURL string `yaml:"api_url"`

	// SessionFile overrides where the login session is persisted.
	// Empty means the default location under the user config directory.
	SessionFile string `yaml:"session_file"`

	// LogFile is where structured logs are written. Empty disables
	// file logging; log records still reach the in-app log view.
	LogFile string `yaml:"log_file"`

	// DefaultEventType pre-selects an event type filter at startup.
	// Empty shows all events.
	DefaultEventType string `yaml:"default_event_type"`
}

// DefaultPath returns the conventional config file location:
// TICKETHUB_CONFIG if set, otherwise tickethub/config.yaml under the
// user config directory.
func DefaultPath() string {
	if path := os.Getenv("TICKETHUB_CONFIG"); path != "" {
		return path
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "tickethub", "config.yaml")
}

// Load reads the config file at path. A missing file is not an error:
// the file is optional and an empty Config is returned, because the
// API URL can arrive by flag or environment instead. A file that
// exists but does not parse is an error.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	config.expandVariables()
	return config, nil
}

// Resolve applies the precedence chain for the API URL: the flag
// value wins, then TICKETHUB_API_URL, then the config file. The
// resolved value is written back to APIURL.
func (c *Config) Resolve(flagURL string) {
	switch {
	case flagURL != "":
		c.APIURL = flagURL
	case os.Getenv("TICKETHUB_API_URL") != "":
		c.APIURL = os.Getenv("TICKETHUB_API_URL")
	}
}

// Validate checks that the configuration is usable. It is called
// after Resolve, so a missing API URL here means no source provided
// one.
func (c *Config) Validate() error {
	var errs []error

	if c.APIURL == "" {
		errs = append(errs, fmt.Errorf("no API URL configured; "+
			"pass --api-url, set TICKETHUB_API_URL, or add api_url to %s", DefaultPath()))
	} else if parsed, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid API URL %q: %w", c.APIURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Errorf("API URL %q must use http or https", c.APIURL))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// path-valued fields, so config files can say ${HOME}/tickethub.log.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.SessionFile = expandVars(c.SessionFile, vars)
	c.LogFile = expandVars(c.LogFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
