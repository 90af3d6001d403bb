package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-dev/goldrush-go/errors"
)

func Test_validateChainName(t *testing.T) {
	assert.Nil(t, validateChainName("eth-mainnet"))
	assert.Nil(t, validateChainName("matic-mumbai"))
	assert.Nil(t, validateChainName("1"))

	for _, bad := range []string{"", "Eth-Mainnet", "eth mainnet", "-eth", "eth/mainnet"} {
		apiErr := validateChainName(bad)
		require.NotNil(t, apiErr, bad)
		assert.Equal(t, errors.KIND_CLIENT_REQUEST, apiErr.Kind)
		assert.Equal(t, errors.STAGE_BEFORE_REQUEST, apiErr.Stage)
		assert.False(t, apiErr.Retryable)
	}
}

func Test_validateWalletAddress(t *testing.T) {
	assert.Nil(t, validateWalletAddress("0xfc43f5F9dd45258b3AFf31Bdbe6561D97e8B71de"))

	for _, bad := range []string{"", "demo.eth", "0x123", "fc43f5f9dd45258b3aff31bdbe6561d97e8b71de"} {
		apiErr := validateWalletAddress(bad)
		require.NotNil(t, apiErr, bad)
		assert.Equal(t, errors.KIND_CLIENT_REQUEST, apiErr.Kind)
	}
}

func Test_validateTxHash(t *testing.T) {
	assert.Nil(t, validateTxHash("0x"+
		"1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"))

	for _, bad := range []string{"", "0x1234", "1234567890abcdef"} {
		apiErr := validateTxHash(bad)
		require.NotNil(t, apiErr, bad)
		assert.Equal(t, errors.KIND_CLIENT_REQUEST, apiErr.Kind)
	}
}

func Test_validateNotBlank(t *testing.T) {
	assert.Nil(t, validateNotBlank("token id", "1"))

	apiErr := validateNotBlank("token id", "   ")
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "token id")
}
