package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathBtcHdWallet     = "v1/btc-mainnet/address/{walletAddress}/hd_wallets/"
	pathBtcTransactions = "v1/btc-mainnet/address/{walletAddress}/transactions_v2/"
)

// Bitcoin implements the Bitcoin-specific API methods. Unlike the EVM
// groups these are fixed to btc-mainnet and take base58/bech32
// addresses and xpubs, so no hex-address validation applies.
type Bitcoin struct {
	api *apiClient
}

func NewBitcoinApi(cfg Config) *Bitcoin {
	return &Bitcoin{
		api: newApiClient(cfg),
	}
}

// HdWalletBalances returns the balances of an HD wallet identified by
// its xpub or ypub key.
func (c *Bitcoin) HdWalletBalances(ctx context.Context, walletAddress string, quoteCurrency string) (*types.BtcHdWalletData, error) {
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.BtcHdWalletResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathBtcHdWallet,
		interpolate(pathBtcHdWallet, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Transactions returns one page of transactions for a Bitcoin address.
func (c *Bitcoin) Transactions(ctx context.Context, walletAddress string, pageNumber uint32, pageSize uint32) (*types.BtcTransactionsResponse, error) {
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	if pageNumber > 0 {
		q.Set("page-number", strconv.FormatUint(uint64(pageNumber), 10))
	}
	if pageSize > 0 {
		q.Set("page-size", strconv.FormatUint(uint64(pageSize), 10))
	}
	var res types.BtcTransactionsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathBtcTransactions,
		interpolate(pathBtcTransactions, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// TransactionsIter returns an iterator over every transaction page of
// a Bitcoin address.
func (c *Bitcoin) TransactionsIter(walletAddress string, pageSize uint32) (*PageIterator[types.BtcTransactionItem], error) {
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	path := interpolate(pathBtcTransactions, "{walletAddress}", walletAddress)
	return newPageIterator(func(ctx context.Context, page uint32, paged bool) ([]types.BtcTransactionItem, *types.PageInfo, error) {
		q := url.Values{}
		if pageSize > 0 {
			q.Set("page-size", strconv.FormatUint(uint64(pageSize), 10))
		}
		if paged {
			q.Set("page-number", strconv.FormatUint(uint64(page), 10))
		}
		var res types.BtcTransactionsResponse
		apiErr := c.api.getJson(ctx, newGetRequest(pathBtcTransactions, path, q), &res)
		if apiErr != nil {
			return nil, nil, apiErr
		}
		if res.Data == nil {
			return nil, res.Pagination, nil
		}
		return res.Data.Items, res.Pagination, nil
	}), nil
}
