package explorer

import (
	"golang.org/x/time/rate"

	httppkg "github.com/trigg3rX/feeshare-avs/pkg/http"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// RequestObserver is told about every explorer request and its outcome.
type RequestObserver func(outcome string)

type Client struct {
	httpClient *httppkg.HTTPClient
	limiter    *rate.Limiter
	config     *Config
	logger     logging.Logger
	observe    RequestObserver
}

func NewExplorerClient(config *Config, logger logging.Logger) (*Client, error) {
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

	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		config:     config,
		logger:     logger,
		observe:    func(string) {},
	}, nil
}

// WithObserver installs a callback used for request metrics.
func (c *Client) WithObserver(observe RequestObserver) *Client {
	if observe != nil {
		c.observe = observe
	}
	return c
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.Close()
}
