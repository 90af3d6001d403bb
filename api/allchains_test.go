package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AllChains_Transactions_query(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{"data":{"items":[]}}`)})
	allChains := NewAllChainsApi(testConfig(c, 0))

	_, err := allChains.Transactions(context.Background(), []string{testWallet}, &MultiChainOptions{
		Chains: []string{"eth-mainnet", "base-mainnet"},
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Contains(t, tr.Url(), "addresses="+testWallet)
	assert.Contains(t, tr.Url(), "chains=eth-mainnet%2Cbase-mainnet")
	assert.Contains(t, tr.Url(), "limit=10")
}

func Test_AllChains_Transactions_requires_address(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{}`)})
	allChains := NewAllChainsApi(testConfig(c, 0))

	_, err := allChains.Transactions(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Equal(t, 0, tr.Sends())
}

func Test_AllChains_BalancesByChain(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{
		"data": {"chain_name": "eth-mainnet", "items": [{"balance": "1"}]}
	}`)})
	allChains := NewAllChainsApi(testConfig(c, 0))

	results, err := allChains.BalancesByChain(
		context.Background(),
		[]string{"eth-mainnet", "base-mainnet", "matic-mainnet"},
		testWallet,
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 3, len(results))
	assert.Equal(t, 3, tr.Sends())
	for _, chainName := range []string{"eth-mainnet", "base-mainnet", "matic-mainnet"} {
		require.NotNil(t, results[chainName])
	}
}

func Test_AllChains_BalancesByChain_propagates_failure(t *testing.T) {
	c, _ := httpClient(testStep{code: 404, body: []byte(`{}`)})
	allChains := NewAllChainsApi(testConfig(c, 0))

	_, err := allChains.BalancesByChain(context.Background(), []string{"eth-mainnet"}, testWallet, nil)

	require.Error(t, err)
}
