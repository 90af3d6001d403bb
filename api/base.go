package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathBlock           = "v1/{chainName}/block_v2/{blockHeight}/"
	pathBlockHeights    = "v1/{chainName}/block_v2/{startDate}/{endDate}/"
	pathLogsByAddress   = "v1/{chainName}/events/address/{contractAddress}/"
	pathLogsByTopic     = "v1/{chainName}/events/topics/{topic}/"
	pathGasPrices       = "v1/{chainName}/event/{eventType}/gas_prices/"
	pathResolveAddress  = "v1/{chainName}/address/{walletAddress}/resolve_address/"
	pathChains          = "v1/chains/"
	pathChainsStatus    = "v1/chains/status/"
	pathAddressActivity = "v1/address/{walletAddress}/activity/"
)

// Base implements the block, log-event and chain catalog API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/base
type Base struct {
	api *apiClient
}

func NewBaseApi(cfg Config) *Base {
	return &Base{
		api: newApiClient(cfg),
	}
}

type LogsOptions struct {
	StartingBlock uint64
	EndingBlock   uint64
	PageNumber    uint32
	PageSize      uint32
}

func (o *LogsOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.StartingBlock > 0 {
		q.Set("starting-block", strconv.FormatUint(o.StartingBlock, 10))
	}
	if o.EndingBlock > 0 {
		q.Set("ending-block", strconv.FormatUint(o.EndingBlock, 10))
	}
	if o.PageNumber > 0 {
		q.Set("page-number", strconv.FormatUint(uint64(o.PageNumber), 10))
	}
	if o.PageSize > 0 {
		q.Set("page-size", strconv.FormatUint(uint64(o.PageSize), 10))
	}
}

// Block returns a single block by height. Pass "latest" semantics by
// using the chain's current height from ChainsStatus.
func (c *Base) Block(ctx context.Context, chainName string, blockHeight uint64) (*types.BlockData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	var res types.BlockResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathBlock,
		interpolate(pathBlock,
			"{chainName}", chainName,
			"{blockHeight}", strconv.FormatUint(blockHeight, 10),
		),
		nil,
	), &res))
}

// BlockHeights returns the block heights signed within a date window.
// Dates are YYYY-MM-DD.
func (c *Base) BlockHeights(ctx context.Context, chainName string, startDate string, endDate string) (*types.BlockHeightsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("start date", startDate); err != nil {
		return nil, err
	}
	if err := validateNotBlank("end date", endDate); err != nil {
		return nil, err
	}
	var res types.BlockHeightsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathBlockHeights,
		interpolate(pathBlockHeights,
			"{chainName}", chainName,
			"{startDate}", startDate,
			"{endDate}", endDate,
		),
		nil,
	), &res))
}

// LogsByAddress returns one page of log events emitted by a contract.
func (c *Base) LogsByAddress(ctx context.Context, chainName string, contractAddress string, opts *LogsOptions) (*types.LogsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(contractAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.LogsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathLogsByAddress,
		interpolate(pathLogsByAddress, "{chainName}", chainName, "{contractAddress}", contractAddress),
		q,
	), &res))
}

// LogsByTopic returns one page of log events matching a topic hash.
func (c *Base) LogsByTopic(ctx context.Context, chainName string, topic string, opts *LogsOptions) (*types.LogsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("topic", topic); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.LogsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathLogsByTopic,
		interpolate(pathLogsByTopic, "{chainName}", chainName, "{topic}", topic),
		q,
	), &res))
}

// GasPrices returns gas price estimates for an event type, one of
// types.GasEventErc20, types.GasEventNativeTokens or
// types.GasEventUniswapV3.
func (c *Base) GasPrices(ctx context.Context, chainName string, eventType string, quoteCurrency string) (*types.GasPricesData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("event type", eventType); err != nil {
		return nil, err
	}
	q := url.Values{}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.GasPricesResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathGasPrices,
		interpolate(pathGasPrices, "{chainName}", chainName, "{eventType}", eventType),
		q,
	), &res))
}

// ResolveAddress resolves an ENS or similar name to its address, or
// an address back to its registered name.
func (c *Base) ResolveAddress(ctx context.Context, chainName string, walletAddress string) (*types.ResolvedAddressData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	var res types.ResolvedAddressResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathResolveAddress,
		interpolate(pathResolveAddress, "{chainName}", chainName, "{walletAddress}", walletAddress),
		nil,
	), &res))
}

// Chains returns the catalog of supported chains.
func (c *Base) Chains(ctx context.Context) (*types.AllChainsData, error) {
	var res types.AllChainsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(pathChains, pathChains, nil), &res))
}

// ChainsStatus returns the sync status of every supported chain.
func (c *Base) ChainsStatus(ctx context.Context) (*types.AllChainStatusData, error) {
	var res types.AllChainStatusResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(pathChainsStatus, pathChainsStatus, nil), &res))
}

// AddressActivity returns the chains a wallet has been active on.
func (c *Base) AddressActivity(ctx context.Context, walletAddress string, testnets bool) (*types.AddressActivityData, error) {
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	if testnets {
		q.Set("testnets", "true")
	}
	var res types.AddressActivityResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathAddressActivity,
		interpolate(pathAddressActivity, "{walletAddress}", walletAddress),
		q,
	), &res))
}
