package appdirectory

import (
	httppkg "github.com/trigg3rX/feeshare-avs/pkg/http"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// Client reads whitelisted applications from the app directory API.
type Client struct {
	httpClient *httppkg.HTTPClient
	config     *Config
	logger     logging.Logger
}

func NewAppDirectoryClient(config *Config, logger logging.Logger) (*Client, error) {
	if config == nil {
		c := DefaultConfig
		config = &c
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpConfig := httppkg.DefaultHTTPConfig()
	httpConfig.Timeout = config.Timeout
	httpClient, err := httppkg.NewHTTPClient(httpConfig, logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}, nil
}

func (c *Client) Close() {
	c.httpClient.Close()
}
