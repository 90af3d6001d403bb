package api

import (
	"context"

	"github.com/goldrush-dev/goldrush-go/types"
)

var (
	pathApprovals    = "v1/{chainName}/approvals/{walletAddress}/"
	pathNftApprovals = "v1/{chainName}/nft/approvals/{walletAddress}/"
)

// Security implements the token approval API methods,
// See: https://goldrush.dev/docs/api-reference/foundational-api/security
type Security struct {
	api *apiClient
}

func NewSecurityApi(cfg Config) *Security {
	return &Security{
		api: newApiClient(cfg),
	}
}

// Approvals returns the ERC-20 spender approvals of a wallet with the
// value at risk per spender. The address must be a hex address; names
// are not resolved here.
func (c *Security) Approvals(ctx context.Context, chainName string, walletAddress string) (*types.ApprovalsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(walletAddress); err != nil {
		return nil, err
	}
	var res types.ApprovalsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathApprovals,
		interpolate(pathApprovals, "{chainName}", chainName, "{walletAddress}", walletAddress),
		nil,
	), &res))
}

// NftApprovals returns the NFT spender approvals of a wallet.
func (c *Security) NftApprovals(ctx context.Context, chainName string, walletAddress string) (*types.NftApprovalsData, error) {
	if err := validateChainName(chainName); err != nil {
		return nil, err
	}
	if err := validateWalletAddress(walletAddress); err != nil {
		return nil, err
	}
	var res types.NftApprovalsResponse
	return toNilErr(res.Data, c.api.getJson(ctx, newGetRequest(
		pathNftApprovals,
		interpolate(pathNftApprovals, "{chainName}", chainName, "{walletAddress}", walletAddress),
		nil,
	), &res))
}
