package config

import (
	"os"
	"time"

	"opskit/pkg/ops"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvBaseURL = "API_BASE_URL"
	EnvToken   = "API_TOKEN"
	EnvTimeout = "API_TIMEOUT"
)

// EnvSource looks up environment variables. *ops.Toolkit satisfies it.
type EnvSource interface {
	GetEnvironmentVariable(name string) (string, error)
}

// LoadConfigFromFile overlays the YAML document in filename onto config.
func LoadConfigFromFile(config *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", filename)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", filename)
	}

	return nil
}

// ApplyEnv overrides config with any of API_BASE_URL, API_TOKEN and API_TIMEOUT that are set.
func ApplyEnv(config *Config, env EnvSource) error {
	if value, ok, err := lookup(env, EnvBaseURL); err != nil {
		return err
	} else if ok {
		config.API.BaseURL = value
	}

	if value, ok, err := lookup(env, EnvToken); err != nil {
		return err
	} else if ok {
		config.API.Token = value
	}

	if value, ok, err := lookup(env, EnvTimeout); err != nil {
		return err
	} else if ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvTimeout)
		}
		config.API.Timeout = timeout
	}

	return nil
}

func lookup(env EnvSource, name string) (string, bool, error) {
	value, err := env.GetEnvironmentVariable(name)
	if err != nil {
		var missing *ops.MissingConfigError
		if errors.As(err, &missing) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
