package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathNfts             = "v1/{chainName}/address/{walletAddress}/balances_nft/"
	pathNftMetadata      = "v1/{chainName}/nft/{contractAddress}/metadata/{tokenId}/"
	pathChainCollections = "v1/{chainName}/nft/collections/"
	pathNftTransactions  = "v1/{chainName}/tokens/{contractAddress}/nft_transactions/{tokenId}/"
	pathFloorPrices      = "v1/{chainName}/nft_market/{contractAddress}/floor_price/"
	pathNftVolume        = "v1/{chainName}/nft_market/{contractAddress}/volume/"
	pathSalesCount       = "v1/{chainName}/nft_market/{contractAddress}/sale_count/"
	pathNftOwnership     = "v1/{chainName}/address/{walletAddress}/collection/{contractAddress}/"
)

// Nfts implements the NFT API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/nft
type Nfts struct {
	api *apiClient
}

func NewNftsApi(cfg Config) *Nfts {
	return &Nfts{
		api: newApiClient(cfg),
	}
}

type NftsOptions struct {
	QuoteCurrency string
	WithMetadata  bool
	NoSpam        bool
	PageNumber    uint32
	PageSize      uint32
}

func (o *NftsOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.WithMetadata {
		q.Set("with-metadata", "true")
	}
	if o.NoSpam {
		q.Set("no-spam", "true")
	}
	if o.PageNumber > 0 {
		q.Set("page-number", strconv.FormatUint(uint64(o.PageNumber), 10))
	}
	if o.PageSize > 0 {
		q.Set("page-size", strconv.FormatUint(uint64(o.PageSize), 10))
	}
}

type NftMarketOptions struct {
	QuoteCurrency string
	Days          uint32
}

func (o *NftMarketOptions) apply(q url.Values) {
	if o == nil {
		return
	}
	if o.QuoteCurrency != "" {
		q.Set("quote-currency", o.QuoteCurrency)
	}
	if o.Days > 0 {
		q.Set("days", strconv.FormatUint(uint64(o.Days), 10))
	}
}

// ForAddress returns one page of NFTs held by a wallet.
func (c *Nfts) ForAddress(ctx context.Context, chainName string, walletAddress string, opts *NftsOptions) (*types.NftsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.NftsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathNfts,
		interpolate(pathNfts, "{chainName}", chainName, "{walletAddress}", walletAddress),
		q,
	), &res))
}

// ForAddressIter returns an iterator over every NFT page of a wallet.
// Page fields on opts are ignored; the iterator drives paging.
func (c *Nfts) ForAddressIter(chainName string, walletAddress string, opts *NftsOptions) (*PageIterator[types.NftItem], error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	path := interpolate(pathNfts, "{chainName}", chainName, "{walletAddress}", walletAddress)
	return newPageIterator(func(ctx context.Context, page uint32, paged bool) ([]types.NftItem, *types.PageInfo, error) {
		q := url.Values{}
		opts.apply(q)
		q.Del("page-number")
		if paged {
			q.Set("page-number", strconv.FormatUint(uint64(page), 10))
		}
		var res types.NftsResponse
		apiErr := c.api.getJson(ctx, newGetRequest(pathNfts, path, q), &res)
		if apiErr != nil {
			return nil, nil, apiErr
		}
		if res.Data == nil {
			return nil, res.Pagination, nil
		}
		return res.Data.Items, res.Pagination, nil
	}), nil
}

// Metadata returns the cached metadata of a single NFT.
func (c *Nfts) Metadata(ctx context.Context, chainName string, contractAddress string, tokenId string) (*types.NftMetadataData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(contractAddress); err != nil {
		return nil, err
	}
	if err := validateNotBlank("token id", tokenId); err != nil {
		return nil, err
	}
	var res types.NftMetadataResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathNftMetadata,
		interpolate(pathNftMetadata,
			"{chainName}", chainName,
			"{contractAddress}", contractAddress,
			"{tokenId}", tokenId,
		),
		nil,
	), &res))
}

// ChainCollections returns one page of NFT collections on a chain.
func (c *Nfts) ChainCollections(ctx context.Context, chainName string, pageNumber uint32, pageSize uint32) (*types.ChainCollectionsResponse, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	q := url.Values{}
	if pageNumber > 0 {
		q.Set("page-number", strconv.FormatUint(uint64(pageNumber), 10))
	}
	if pageSize > 0 {
		q.Set("page-size", strconv.FormatUint(uint64(pageSize), 10))
	}
	var res types.ChainCollectionsResponse
	return toNilErr(&res, c.api.getJson(ctx, newGetRequest(
		pathChainCollections,
		interpolate(pathChainCollections, "{chainName}", chainName),
		q,
	), &res))
}

// Transactions returns the transfer history of a single NFT.
func (c *Nfts) Transactions(ctx context.Context, chainName string, contractAddress string, tokenId string) (*types.NftTransactionsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(contractAddress); err != nil {
		return nil, err
	}
	if err := validateNotBlank("token id", tokenId); err != nil {
		return nil, err
	}
	var res types.NftTransactionsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathNftTransactions,
		interpolate(pathNftTransactions,
			"{chainName}", chainName,
			"{contractAddress}", contractAddress,
			"{tokenId}", tokenId,
		),
		nil,
	), &res))
}

// FloorPrices returns the daily floor price of a collection.
func (c *Nfts) FloorPrices(ctx context.Context, chainName string, contractAddress string, opts *NftMarketOptions) (*types.FloorPricesData, error) {
	return marketData[types.FloorPricesData](ctx, c, pathFloorPrices, chainName, contractAddress, opts)
}

// Volume returns the daily sale volume of a collection.
func (c *Nfts) Volume(ctx context.Context, chainName string, contractAddress string, opts *NftMarketOptions) (*types.VolumeData, error) {
	return marketData[types.VolumeData](ctx, c, pathNftVolume, chainName, contractAddress, opts)
}

// SalesCount returns the daily sale count of a collection.
func (c *Nfts) SalesCount(ctx context.Context, chainName string, contractAddress string, opts *NftMarketOptions) (*types.SalesCountData, error) {
	return marketData[types.SalesCountData](ctx, c, pathSalesCount, chainName, contractAddress, opts)
}

func marketData[T any](ctx context.Context, c *Nfts, path string, chainName string, contractAddress string, opts *NftMarketOptions) (*T, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(contractAddress); err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.apply(q)
	var res types.Envelope[T]
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		path,
		interpolate(path, "{chainName}", chainName, "{contractAddress}", contractAddress),
		q,
	), &res))
}

// CheckOwnership reports which NFTs of a collection a wallet holds.
func (c *Nfts) CheckOwnership(ctx context.Context, chainName string, walletAddress string, contractAddress string) (*types.NftsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(contractAddress); err != nil {
		return nil, err
	}
	var res types.NftsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathNftOwnership,
		interpolate(pathNftOwnership,
			"{chainName}", chainName,
			"{walletAddress}", walletAddress,
			"{contractAddress}", contractAddress,
		),
		nil,
	), &res))
}
