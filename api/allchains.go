package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathMultiChainBalances     = "v1/allchains/address/{walletAddress}/balances/"
	pathMultiChainTransactions = "v1/allchains/transactions/"
)

// maxChainConcurrency bounds the per-chain fan-out so a long chain
// list does not open dozens of simultaneous requests.
const maxChainConcurrency = 4

// AllChains implements the cross-chain API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/all-chains
type AllChains struct {
	api      *apiClient
	balances *Balances
}

func NewAllChainsApi(cfg Config) *AllChains {
	return &AllChains{
		api:      newApiClient(cfg),
		balances: NewBalancesApi(cfg),
	}
}

type MultiChainOptions struct {
	Chains        []string
	QuoteCurrency string
	Limit         uint32
	Before        string
}

func (o *MultiChainOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if len(o.Chains) > 0 {
		q.Set("chains", strings.Join(o.Chains, ","))
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.FormatUint(uint64(o.Limit), 10))
	}
	if o.Before != "" {
		q.Set("before", o.Before)
	}
}

// Balances returns the wallet's token balances across chains in one
// call, served by the API's cross-chain index.
func (c *AllChains) Balances(ctx context.Context, walletAddress string, opts *MultiChainOptions) (*types.MultiChainBalancesData, error) {
	if err := validateNotBlank("wallet address", walletAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.MultiChainBalancesResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathMultiChainBalances,
		interpolate(pathMultiChainBalances, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// Transactions returns the wallet's transactions across chains.
// Addresses go in the query; the endpoint supports several at once.
func (c *AllChains) Transactions(ctx context.Context, walletAddresses []string, opts *MultiChainOptions) (*types.MultiChainTransactionsData, error) {
	if len(walletAddresses) == 0 {
		return nil, invalidRequest("at least one wallet address is required")
	}
	q := url.Values{}
	opts.apply(q)
	q.Set("addresses", strings.Join(walletAddresses, ","))
	var res types.MultiChainTransactionsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathMultiChainTransactions,
		pathMultiChainTransactions,
		q,
	), &res))
}

// BalancesByChain fans out one balances_v2 request per chain and
// collects the results keyed by chain name. The first failure cancels
// the remaining requests and is returned.
func (c *AllChains) BalancesByChain(ctx context.Context, chainNames []string, walletAddress string, opts *BalancesOptions) (map[string]*types.BalancesData, error) {
	if len(chainNames) == 0 {
		return nil, invalidRequest("at least one chain name is required")
	}
	for _, chainName := range chainNames {
		if err := validateChainName(chainName); err != nil {
			return nil, err
		}
	}

	var mu sync.Mutex
	results := make(map[string]*types.BalancesData, len(chainNames))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxChainConcurrency)
	for _, chainName := range chainNames {
		chainName := chainName
		group.Go(func() error {
			data, err := c.balances.TokenBalances(groupCtx, chainName, walletAddress, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			results[chainName] = data
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
