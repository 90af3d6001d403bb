package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-dev/goldrush-go/types"
)

func Test_Classify(t *testing.T) {
	testCases := []struct {
		name            string
		httpStatus      int
		body            []byte
		transportErr    error
		expectKind      string
		expectStage     string
		expectRetryable bool
	}{
		{
			name:            "transport failure",
			transportErr:    fmt.Errorf("dial tcp: connection refused"),
			expectKind:      KIND_NETWORK,
			expectStage:     STAGE_REQUEST,
			expectRetryable: true,
		},
		{
			name:            "429 rate limited",
			httpStatus:      429,
			body:            []byte(`{"error":true,"error_code":429,"error_message":"slow down"}`),
			expectKind:      KIND_RATE_LIMITED,
			expectStage:     STAGE_AFTER_REQUEST,
			expectRetryable: true,
		},
		{
			name:            "500 server error",
			httpStatus:      500,
			expectKind:      KIND_SERVER,
			expectStage:     STAGE_AFTER_REQUEST,
			expectRetryable: true,
		},
		{
			name:            "503 server error",
			httpStatus:      503,
			expectKind:      KIND_SERVER,
			expectRetryable: true,
		},
		{
			name:            "400 client error",
			httpStatus:      400,
			body:            []byte(`{"error":{"code":400,"message":"bad chain"}}`),
			expectKind:      KIND_CLIENT_REQUEST,
			expectStage:     STAGE_AFTER_REQUEST,
			expectRetryable: false,
		},
		{
			name:            "401 unauthorized",
			httpStatus:      401,
			expectKind:      KIND_CLIENT_REQUEST,
			expectRetryable: false,
		},
		{
			name:            "404 not found",
			httpStatus:      404,
			expectKind:      KIND_CLIENT_REQUEST,
			expectRetryable: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := Classify(tt.httpStatus, tt.body, tt.transportErr)

			require.NotNil(t, apiErr)
			assert.Equal(t, tt.expectKind, apiErr.Kind)
			assert.Equal(t, tt.expectRetryable, apiErr.Retryable)
			if tt.expectStage != "" {
				assert.Equal(t, tt.expectStage, apiErr.Stage)
			}
			if tt.transportErr != nil {
				assert.Equal(t, tt.transportErr, apiErr.Unwrap())
			} else {
				assert.Equal(t, tt.httpStatus, apiErr.HttpStatusCode)
			}
		})
	}
}

func Test_Classify_is_deterministic(t *testing.T) {
	body := []byte(`{"error":true,"error_code":429,"error_message":"slow down"}`)
	first := Classify(429, body, nil)
	second := Classify(429, body, nil)
	assert.Equal(t, first, second)
}

func Test_Classify_fills_message_from_body(t *testing.T) {
	apiErr := Classify(400, []byte(`{"error":{"code":400,"message":"bad chain"}}`), nil)
	assert.Equal(t, "bad chain", apiErr.Message)
	assert.Equal(t, int64(400), apiErr.GoldRushCode)

	flat := Classify(429, []byte(`{"error":true,"error_code":429,"error_message":"slow down"}`), nil)
	assert.Equal(t, "slow down", flat.Message)
	assert.Equal(t, int64(429), flat.GoldRushCode)
}

func Test_ParseFailure(t *testing.T) {
	src := fmt.Errorf("unexpected end of JSON input")
	apiErr := ParseFailure(200, []byte(`{"data":`), src)

	assert.Equal(t, KIND_JSON_PARSE, apiErr.Kind)
	assert.Equal(t, STAGE_AFTER_REQUEST, apiErr.Stage)
	assert.False(t, apiErr.Retryable)
	assert.Equal(t, 200, apiErr.HttpStatusCode)
	assert.Equal(t, src, apiErr.Unwrap())
}

func Test_DomainError(t *testing.T) {
	code := int64(507)
	msg := "chain disabled"
	apiErr := DomainError(200, &types.ErrorBody{Code: &code, Message: &msg})

	assert.Equal(t, KIND_API_DOMAIN, apiErr.Kind)
	assert.False(t, apiErr.Retryable)
	assert.Equal(t, int64(507), apiErr.GoldRushCode)
	assert.Equal(t, "chain disabled", apiErr.Message)

	empty := DomainError(200, nil)
	assert.Equal(t, KIND_API_DOMAIN, empty.Kind)
}

func Test_ApiError_Error_format(t *testing.T) {
	apiErr := &ApiError{
		Stage:          STAGE_AFTER_REQUEST,
		Kind:           KIND_SERVER,
		HttpStatusCode: 500,
		Message:        "boom",
	}
	assert.Contains(t, apiErr.Error(), "'after-request'")
	assert.Contains(t, apiErr.Error(), "'server'")
	assert.Contains(t, apiErr.Error(), "'500'")
	assert.Contains(t, apiErr.Error(), "boom")
}
