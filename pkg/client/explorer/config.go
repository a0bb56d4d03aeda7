package explorer

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Config struct {
	BaseURL   string
	APIKey    string
	PageSize  int
	RateLimit float64 // requests per second, <= 0 disables limiting
	Timeout   time.Duration
}

var DefaultConfig = Config{
	BaseURL:   "https://swell-testnet-explorer.alt.technology",
	PageSize:  1000,
	RateLimit: 5,
	Timeout:   10 * time.Second,
}

func LoadConfig(baseURL, apiKey string, pageSize int, rateLimit float64) (*Config, error) {
	config := DefaultConfig

	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	if pageSize > 0 {
		config.PageSize = pageSize
	}
	if rateLimit != 0 {
		config.RateLimit = rateLimit
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("explorer base URL is required")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid explorer base URL %q: %w", c.BaseURL, err)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// TxListEndpoint returns the account txlist URL of one page.
func (c *Config) TxListEndpoint(contract common.Address, fromBlock, toBlock uint64, page int) string {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", contract.Hex())
	q.Set("startblock", strconv.FormatUint(fromBlock, 10))
	q.Set("endblock", strconv.FormatUint(toBlock, 10))
	q.Set("sort", "asc")
	q.Set("page", strconv.Itoa(page))
	q.Set("offset", strconv.Itoa(c.PageSize))
	if c.APIKey != "" {
		q.Set("apikey", c.APIKey)
	}
	return c.BaseURL + "/api?" + q.Encode()
}
