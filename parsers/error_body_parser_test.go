package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ErrorBodyFromBytes_envelope_shape(t *testing.T) {
	body, ok := ErrorBodyFromBytes([]byte(`{"error":{"code":501,"message":"backend queue is full"}}`))

	require.True(t, ok)
	require.NotNil(t, body.Code)
	assert.Equal(t, int64(501), *body.Code)
	require.NotNil(t, body.Message)
	assert.Equal(t, "backend queue is full", *body.Message)
}

func Test_ErrorBodyFromBytes_flat_shape(t *testing.T) {
	body, ok := ErrorBodyFromBytes([]byte(`{"error":true,"error_code":429,"error_message":"slow down"}`))

	require.True(t, ok)
	require.NotNil(t, body.Code)
	assert.Equal(t, int64(429), *body.Code)
	require.NotNil(t, body.Message)
	assert.Equal(t, "slow down", *body.Message)
}

func Test_ErrorBodyFromBytes_no_error(t *testing.T) {
	testCases := []struct {
		name string
		body []byte
	}{
		{name: "empty body", body: nil},
		{name: "not json", body: []byte(`<html>502 Bad Gateway</html>`)},
		{name: "success envelope", body: []byte(`{"data":{"items":[]},"error":null}`)},
		{name: "flat false", body: []byte(`{"error":false}`)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ErrorBodyFromBytes(tt.body)
			assert.False(t, ok)
		})
	}
}
