package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-dev/goldrush-go/errors"
)

const testTxHash = "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

func Test_Transactions_Get(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{
		"data": {"items": [{"tx_hash": "` + testTxHash + `", "successful": true}]}
	}`)})
	txs := NewTransactionsApi(testConfig(c, 0))

	data, err := txs.Get(context.Background(), "eth-mainnet", testTxHash, &TransactionOptions{NoLogs: true})

	require.NoError(t, err)
	require.Equal(t, 1, len(data.Items))
	assert.True(t, data.Items[0].Successful)
	assert.Equal(t,
		"https://api.goldrush.dev/v1/eth-mainnet/transaction_v2/"+testTxHash+"/?no-logs=true",
		tr.Url(),
	)
}

func Test_Transactions_Get_bad_hash(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{}`)})
	txs := NewTransactionsApi(testConfig(c, 0))

	_, err := txs.Get(context.Background(), "eth-mainnet", "0xnope", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.ApiError{})
	assert.Equal(t, 0, tr.Sends())
}

func Test_Transactions_Iter_uses_page_path(t *testing.T) {
	c, tr := httpClient(
		testStep{code: 200, body: []byte(`{
			"data": {"items": [{"tx_hash": "0xaa"}]},
			"pagination": {"has_more": true, "page_number": 0}
		}`)},
		testStep{code: 200, body: []byte(`{
			"data": {"items": [{"tx_hash": "0xbb"}]},
			"pagination": {"has_more": false, "page_number": 1}
		}`)},
	)
	txs := NewTransactionsApi(testConfig(c, 0))

	it, err := txs.Iter("eth-mainnet", testWallet, nil)
	require.NoError(t, err)

	all, err := it.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, len(all))
	assert.Contains(t, tr.Url(), "/transactions_v3/page/1/")
}

func Test_Transactions_ByBlock(t *testing.T) {
	c, tr := httpClient(testStep{code: 200, body: []byte(`{"data":{"items":[]}}`)})
	txs := NewTransactionsApi(testConfig(c, 0))

	_, err := txs.ByBlock(context.Background(), "eth-mainnet", 19000000, nil)

	require.NoError(t, err)
	assert.Equal(t,
		"https://api.goldrush.dev/v1/eth-mainnet/block/19000000/transactions_v3/",
		tr.Url(),
	)
}
