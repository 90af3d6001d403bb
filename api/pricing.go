package api

import (
	"context"
	"net/url"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathTokenPrices    = "v1/pricing/historical_by_addresses_v2/{chainName}/{quoteCurrency}/{contractAddress}/"
	pathPoolSpotPrices = "v1/{chainName}/xy=k/{dexName}/pools/address/{poolAddress}/"
)

// Pricing implements the token pricing API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/pricing
type Pricing struct {
	api *apiClient
}

func NewPricingApi(cfg Config) *Pricing {
	return &Pricing{
		api: newApiClient(cfg),
	}
}

type TokenPricesOptions struct {
	From        string
	To          string
	PricesAtAsc bool
}

func (o *TokenPricesOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.From != "" {
		q.Set("from", o.From)
	}
	if o.To != "" {
		q.Set("to", o.To)
	}
	if o.PricesAtAsc {
		q.Set("prices-at-asc", "true")
	}
}

// TokenPrices returns daily historical prices for one or more token
// contracts. contractAddress may be a comma-joined list.
func (c *Pricing) TokenPrices(ctx context.Context, chainName string, quoteCurrency string, contractAddress string, opts *TokenPricesOptions) ([]types.TokenPriceItem, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("quote currency", quoteCurrency); err != nil {
		return nil, err
	}
	if err := validateNotBlank("contract address", contractAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.TokenPricesResponse
	apiErr := c.api.getJson(ctx, newGetRequest(
		pathTokenPrices,
		interpolate(pathTokenPrices,
			"{chainName}", chainName,
			"{quoteCurrency}", quoteCurrency,
			"{contractAddress}", contractAddress,
		),
		q,
	), &res)
	if apiErr != nil {
		return nil, apiErr
	}
	if res.Data == nil {
		return nil, nil
	}
	return *res.Data, nil
}

// PoolSpotPrices returns the spot state of a DEX liquidity pool.
func (c *Pricing) PoolSpotPrices(ctx context.Context, chainName string, dexName string, poolAddress string, quoteCurrency string) (*types.PoolSpotPricesData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("dex name", dexName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(poolAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.PoolSpotPricesResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathPoolSpotPrices,
		interpolate(pathPoolSpotPrices,
			"{chainName}", chainName,
			"{dexName}", dexName,
			"{poolAddress}", poolAddress,
		),
		q,
	), &res))
}
