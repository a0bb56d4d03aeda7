package appdirectory

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

var DefaultConfig = Config{
	BaseURL: "http://localhost:3000/api",
	Timeout: 10 * time.Second,
}

func LoadConfig(baseURL string, timeout time.Duration) (*Config, error) {
	config := DefaultConfig

	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if timeout > 0 {
		config.Timeout = timeout
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("app directory URL is required")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid app directory URL %q: %w", c.BaseURL, err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func (c *Config) GetEndpoint(path string) string {
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}
