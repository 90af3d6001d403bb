package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathBalances           = "v1/{chainName}/address/{walletAddress}/balances_v2/"
	pathNativeBalance      = "v1/{chainName}/address/{walletAddress}/balances_native/"
	pathPortfolio          = "v1/{chainName}/address/{walletAddress}/portfolio_v2/"
	pathErc20Transfers     = "v1/{chainName}/address/{walletAddress}/transfers_v2/"
	pathTokenHolders       = "v1/{chainName}/tokens/{tokenAddress}/token_holders_v2/"
	pathHistoricalBalances = "v1/{chainName}/address/{walletAddress}/historical_balances/"
)

// Balances implements the token balance API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/balances
type Balances struct {
	api *apiClient
}

func NewBalancesApi(cfg Config) *Balances {
	return &Balances{
		api: newApiClient(cfg),
	}
}

type BalancesOptions struct {
	QuoteCurrency string
	Nft           bool
	NoNftFetch    bool
	NoSpam        bool
}

func (o *BalancesOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.Nft {
		q.Set("nft", "true")
	}
	if o.NoNftFetch {
		q.Set("no-nft-fetch", "true")
	}
	if o.NoSpam {
		q.Set("no-spam", "true")
	}
}

type Erc20TransfersOptions struct {
	QuoteCurrency   string
	ContractAddress string
	StartingBlock   uint64
	EndingBlock     uint64
	PageNumber      uint32
	PageSize        uint32
}

func (o *Erc20TransfersOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.ContractAddress != "" {
		q.Set("contract-address", o.ContractAddress)
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

type TokenHoldersOptions struct {
	BlockHeight uint64
	PageNumber  uint32
	PageSize    uint32
}

func (o *TokenHoldersOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.BlockHeight > 0 {
		q.Set("block-height", strconv.FormatUint(o.BlockHeight, 10))
	}
	if o.PageNumber > 0 {
		q.Set("page-number", strconv.FormatUint(uint64(o.PageNumber), 10))
	}
	if o.PageSize > 0 {
		q.Set("page-size", strconv.FormatUint(uint64(o.PageSize), 10))
	}
}

// TokenBalances returns the token balances of a wallet on one chain.
func (c *Balances) TokenBalances(ctx context.Context, chainName string, walletAddress string, opts *BalancesOptions) (*types.BalancesData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.BalancesResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathBalances,
		interpolate(pathBalances, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// NativeBalance returns the native gas token balance of a wallet.
func (c *Balances) NativeBalance(ctx context.Context, chainName string, walletAddress string, opts *BalancesOptions) (*types.NativeBalanceData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.NativeBalanceResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathNativeBalance,
		interpolate(pathNativeBalance, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Portfolio returns the historical portfolio value of a wallet over
// the trailing month.
func (c *Balances) Portfolio(ctx context.Context, chainName string, walletAddress string, quoteCurrency string) (*types.PortfolioData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.PortfolioResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathPortfolio,
		interpolate(pathPortfolio, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Erc20Transfers returns one page of ERC-20 transfers for a wallet.
// The full envelope is returned so callers can inspect pagination.
func (c *Balances) Erc20Transfers(ctx context.Context, chainName string, walletAddress string, opts *Erc20TransfersOptions) (*types.Erc20TransfersResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.Erc20TransfersResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathErc20Transfers,
		interpolate(pathErc20Transfers, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Erc20TransfersIter returns an iterator over every ERC-20 transfer
// page. Page fields on opts are ignored; the iterator drives paging.
func (c *Balances) Erc20TransfersIter(chainName string, walletAddress string, opts *Erc20TransfersOptions) (*PageIterator[types.Erc20TransferItem], error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	path := interpolate(pathErc20Transfers, "{chainName}", chainName, "{walletAddress}", walletAddress)
	return newPageIterator(func(ctx context.Context, page uint32, paged bool) ([]types.Erc20TransferItem, *types.PageInfo, error) {
		q := url.Values{}
		opts.apply(q)
		q.Del("page-number")
		if paged {
			q.Set("page-number", strconv.FormatUint(uint64(page), 10))
		}
		var res types.Erc20TransfersResponse
		apiErr := c.api.getJson(ctx, newGetRequest(pathErc20Transfers, path, q), &res)
		if apiErr != nil {
			return nil, nil, apiErr
		}
		if res.Data == nil {
			return nil, res.Pagination, nil
		}
		return res.Data.Items, res.Pagination, nil
	}), nil
}

// TokenHolders returns one page of holders of a token contract.
func (c *Balances) TokenHolders(ctx context.Context, chainName string, tokenAddress string, opts *TokenHoldersOptions) (*types.TokenHoldersResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(tokenAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.TokenHoldersResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathTokenHolders,
		interpolate(pathTokenHolders, "{chainName}", chainName, "{tokenAddress}", tokenAddress),
		q,
	), &res))
}

// HistoricalBalances returns the wallet's token balances as of a past
// date (YYYY-MM-DD) or block height.
func (c *Balances) HistoricalBalances(ctx context.Context, chainName string, walletAddress string, date string, quoteCurrency string) (*types.HistoricalBalancesData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.HistoricalBalancesResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathHistoricalBalances,
		interpolate(pathHistoricalBalances, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}
