package config

import "time"

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Config holds settings for the demo command line tools.
type Config struct {
	API   APIConfig `yaml:"api"`
	Debug bool      `yaml:"debug"`
}

// APIConfig configures the REST client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file or environment overrides are given.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
			Timeout: defaultTimeout,
		},
	}
}
