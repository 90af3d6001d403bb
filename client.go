package goldrush_go

import (
	"net/http"
	"strings"

	"github.com/goldrush-dev/goldrush-go/api"
	"github.com/goldrush-dev/goldrush-go/errors"
	"github.com/goldrush-dev/goldrush-go/retry"
)

// Version reported in the User-Agent header.
const Version = "1.0.0"

type Client struct {
	httpClient *http.Client

	balances     *api.Balances
	transactions *api.Transactions
	nfts         *api.Nfts
	base         *api.Base
	pricing      *api.Pricing
	security     *api.Security
	bitcoin      *api.Bitcoin
	allChains    *api.AllChains
}

// NewClient builds a GoldRush API client. A blank apiKey fails here,
// before any request is made.
func NewClient(apiKey string, opts ...ConfigOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.MissingCredential()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	if cfg.retry == nil {
		cfg.retry = retry.NewExponentialRetry(
			retry.WithInitialDuration(cfg.initialBackoff),
			retry.WithLogger(cfg.logger),
		)
	}

	apiCfg := api.Config{
		ApiKey:     apiKey,
		BaseUrl:    cfg.baseUrl,
		UserAgent:  cfg.userAgent,
		HttpClient: httpClient,
		Logger:     cfg.logger,
		Limiter:    cfg.limiter,
		Retry:      cfg.retry,
		MaxRetries: cfg.maxRetries,
		Metrics:    cfg.metrics,
	}

	return &Client{
		httpClient:   httpClient,
		balances:     api.NewBalancesApi(apiCfg),
		transactions: api.NewTransactionsApi(apiCfg),
		nfts:         api.NewNftsApi(apiCfg),
		base:         api.NewBaseApi(apiCfg),
		pricing:      api.NewPricingApi(apiCfg),
		security:     api.NewSecurityApi(apiCfg),
		bitcoin:      api.NewBitcoinApi(apiCfg),
		allChains:    api.NewAllChainsApi(apiCfg),
	}, nil
}

func (c *Client) Balances() *api.Balances {
	return c.balances
}

func (c *Client) Transactions() *api.Transactions {
	return c.transactions
}

func (c *Client) Nfts() *api.Nfts {
	return c.nfts
}

func (c *Client) Base() *api.Base {
	return c.base
}

func (c *Client) Pricing() *api.Pricing {
	return c.pricing
}

func (c *Client) Security() *api.Security {
	return c.security
}

func (c *Client) Bitcoin() *api.Bitcoin {
	return c.bitcoin
}

func (c *Client) AllChains() *api.AllChains {
	return c.allChains
}
