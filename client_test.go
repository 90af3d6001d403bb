package goldrush_go

import (
	"fmt"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-dev/goldrush-go/errors"
	"github.com/goldrush-dev/goldrush-go/metrics"
	"github.com/goldrush-dev/goldrush-go/rate"
)

var (
	apiKey = "__API__KEY__"
)

func Test_newClient(t *testing.T) {
	c, err := NewClient(apiKey)
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
	assert.NotNil(t, c.httpClient.Transport)
}

func Test_newClient_blank_key(t *testing.T) {
	for _, key := range []string{"", "   ", "\t"} {
		c, err := NewClient(key)
		assert.Nil(t, c)
		require.Error(t, err)

		apiErr, ok := err.(*errors.ApiError)
		require.True(t, ok)
		assert.Equal(t, errors.KIND_MISSING_CREDENTIAL, apiErr.Kind)
	}
}

func Test_newClient_opts(t *testing.T) {
	tt := &fakeTransport{}
	c, err := NewClient(
		apiKey,
		WithTimeout(1*time.Second),
		WithTransport(tt),
		WithRateLimiter(&rate.NoopLimiter{}),
		WithMetrics(metrics.NewInMemory()),
		WithMaxRetries(5),
	)
	require.NoError(t, err)
	assert.Equal(t, 1*time.Second, c.httpClient.Timeout)
	assert.Equal(t, tt, c.httpClient.Transport)
}

func Test_newClient_init_all_apis(t *testing.T) {
	c, err := NewClient(apiKey)
	require.NoError(t, err)
	values := reflect.ValueOf(*c)
	types := reflect.TypeOf(*c)
	for i := 0; i < values.NumField(); i++ {
		field := values.Field(i)
		fieldName := types.Field(i).Name
		if field.IsNil() {
			assert.Fail(t, fmt.Sprintf("%s is not initialized", fieldName))
		}
	}
}

func Test_config_WithTransport(t *testing.T) {
	c := config{}
	WithTransport(&fakeTransport{})(&c)
	assert.NotNil(t, c.transport)
}

func Test_config_WithTimeout(t *testing.T) {
	c := config{}
	WithTimeout(2 * time.Second)(&c)
	assert.Equal(t, 2*time.Second, c.timeout)
}

func Test_config_WithBaseUrl(t *testing.T) {
	c := config{}
	WithBaseUrl("https://proxy.internal")(&c)
	assert.Equal(t, "https://proxy.internal", c.baseUrl)
}

func Test_config_WithMaxRetries(t *testing.T) {
	c := config{}
	WithMaxRetries(7)(&c)
	assert.Equal(t, 7, c.maxRetries)
}

func Test_config_WithInitialBackoff(t *testing.T) {
	c := config{}
	WithInitialBackoff(50 * time.Millisecond)(&c)
	assert.Equal(t, 50*time.Millisecond, c.initialBackoff)
}

func Test_config_WithRateLimiter(t *testing.T) {
	c := config{}
	WithRateLimiter(&rate.NoopLimiter{})(&c)
	assert.NotNil(t, c.limiter)
}

func Test_config_WithUserAgent(t *testing.T) {
	c := config{}
	WithUserAgent("my-app/2.0")(&c)
	assert.Equal(t, "my-app/2.0", c.userAgent)
}

type fakeTransport struct {
}

func (f fakeTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return nil, nil
}

var _ http.RoundTripper = &fakeTransport{}
