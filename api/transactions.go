package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathTransactions       = "v1/{chainName}/address/{walletAddress}/transactions_v3/"
	pathTransactionsPage   = "v1/{chainName}/address/{walletAddress}/transactions_v3/page/{pageNumber}/"
	pathTransaction        = "v1/{chainName}/transaction_v2/{txHash}/"
	pathTransactionSummary = "v1/{chainName}/address/{walletAddress}/transactions_summary/"
	pathBlockTransactions  = "v1/{chainName}/block/{blockHeight}/transactions_v3/"
	pathTimeBucket         = "v1/{chainName}/bulk/transactions/{walletAddress}/{timeBucket}/"
)

// Transactions implements the transaction API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/transactions
type Transactions struct {
	api *apiClient
}

func NewTransactionsApi(cfg Config) *Transactions {
	return &Transactions{
		api: newApiClient(cfg),
	}
}

type TransactionsOptions struct {
	QuoteCurrency  string
	NoLogs         bool
	BlockSignedAsc bool
	WithSafe       bool
}

func (o *TransactionsOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.NoLogs {
		q.Set("no-logs", "true")
	}
	if o.BlockSignedAsc {
		q.Set("block-signed-at-asc", "true")
	}
	if o.WithSafe {
		q.Set("with-safe", "true")
	}
}

type TransactionOptions struct {
	QuoteCurrency string
	NoLogs        bool
	WithDex       bool
	WithNftSales  bool
}

func (o *TransactionOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.NoLogs {
		q.Set("no-logs", "true")
	}
	if o.WithDex {
		q.Set("with-dex", "true")
	}
	if o.WithNftSales {
		q.Set("with-nft-sales", "true")
	}
}

// All returns the most recent page of transactions for a wallet.
func (c *Transactions) All(ctx context.Context, chainName string, walletAddress string, opts *TransactionsOptions) (*types.TransactionsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.TransactionsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathTransactions,
		interpolate(pathTransactions, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Page returns one explicit page of transactions for a wallet.
func (c *Transactions) Page(ctx context.Context, chainName string, walletAddress string, pageNumber uint32, opts *TransactionsOptions) (*types.TransactionsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.TransactionsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathTransactionsPage,
		interpolate(pathTransactionsPage,
			"{chainName}", chainName,
			"{walletAddress}", walletAddress,
			"{pageNumber}", strconv.FormatUint(uint64(pageNumber), 10),
		),
		q,
	), &res))
}

// Iter returns an iterator over every transaction page for a wallet.
func (c *Transactions) Iter(chainName string, walletAddress string, opts *TransactionsOptions) (*PageIterator[types.TransactionItem], error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	return newPageIterator(func(ctx context.Context, page uint32, paged bool) ([]types.TransactionItem, *types.PageInfo, error) {
		var res *types.TransactionsResponse
		var err error
		if paged {
			res, err = c.Page(ctx, chainName, walletAddress, page, opts)
		} else {
			res, err = c.All(ctx, chainName, walletAddress, opts)
		}
		if err != nil {
			return nil, nil, err
		}
		if res.Data == nil {
			return nil, res.Pagination, nil
		}
		return res.Data.Items, res.Pagination, nil
	}), nil
}

// Get returns a single transaction, including its decoded log events.
func (c *Transactions) Get(ctx context.Context, chainName string, txHash string, opts *TransactionOptions) (*types.TransactionsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateTxHash(txHash); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.TransactionResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathTransaction,
		interpolate(pathTransaction, "{chainName}", chainName, "{txHash}", txHash),
		q,
	), &res))
}

// Summary returns the earliest and latest transaction of a wallet and
// its total transaction count.
func (c *Transactions) Summary(ctx context.Context, chainName string, walletAddress string) (*types.TransactionSummaryData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	var res types.TransactionSummaryResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathTransactionSummary,
		interpolate(pathTransactionSummary, "{chainName}", chainName, "{walletAddress}", walletAddress),
		nil,
	), &res))
}

// ByBlock returns all transactions in a block.
func (c *Transactions) ByBlock(ctx context.Context, chainName string, blockHeight uint64, opts *TransactionsOptions) (*types.BlockTransactionsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.BlockTransactionsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathBlockTransactions,
		interpolate(pathBlockTransactions,
			"{chainName}", chainName,
			"{blockHeight}", strconv.FormatUint(blockHeight, 10),
		),
		q,
	), &res))
}

// TimeBucket returns all wallet transactions in a 15-minute bucket.
func (c *Transactions) TimeBucket(ctx context.Context, chainName string, walletAddress string, timeBucket uint64, quoteCurrency string) (*types.TimeBucketData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	if quoteCurrency != "" {
		q.Set("quote-currency", quoteCurrency)
	}
	var res types.TimeBucketResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathTimeBucket,
		interpolate(pathTimeBucket,
			"{chainName}", chainName,
			"{walletAddress}", walletAddress,
			"{timeBucket}", strconv.FormatUint(timeBucket, 10),
		),
		q,
	), &res))
}
