package api

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goldrush-dev/goldrush-go/errors"
	"github.com/goldrush-dev/goldrush-go/logger"
	"github.com/goldrush-dev/goldrush-go/metrics"
	"github.com/goldrush-dev/goldrush-go/rate"
	"github.com/goldrush-dev/goldrush-go/retry"
	"github.com/goldrush-dev/goldrush-go/types"
)

const defaultBaseUrl = "https://api.goldrush.dev"

// Config carries the collaborators shared by every endpoint group.
// Zero-value fields get a working default from newApiClient, so the
// root client only has to fill in what the caller customized.
type Config struct {
	ApiKey     string
	BaseUrl    string
	UserAgent  string
	HttpClient *http.Client
	Logger     logger.Logger
	Limiter    rate.Limiter
	Retry      retry.Retry
	MaxRetries int
	Metrics    metrics.Collector
}

type apiClient struct {
	apiKey     string
	baseUrl    string
	userAgent  string
	httpClient *http.Client
	logger     logger.Logger
	limiter    rate.Limiter
	retry      retry.Retry
	maxRetries int
	metrics    metrics.Collector
}

func newApiClient(cfg Config) *apiClient {
	c := &apiClient{
		apiKey:     cfg.ApiKey,
		baseUrl:    cfg.BaseUrl,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HttpClient,
		logger:     cfg.Logger,
		limiter:    cfg.Limiter,
		retry:      cfg.Retry,
		maxRetries: cfg.MaxRetries,
		metrics:    cfg.Metrics,
	}
	if c.baseUrl == "" {
		c.baseUrl = defaultBaseUrl
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = &logger.Noop{}
	}
	if c.limiter == nil {
		c.limiter = &rate.NoopLimiter{}
	}
	if c.metrics == nil {
		c.metrics = &metrics.Noop{}
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if c.retry == nil {
		c.retry = retry.NewExponentialRetry(retry.WithLogger(c.logger))
	}
	return c
}

// domainErrorCarrier is satisfied by every response envelope; it lets
// the dispatcher reject envelopes whose error field is populated
// without knowing the concrete data type.
type domainErrorCarrier interface {
	EnvelopeError() *types.ErrorBody
}

// getJson runs the request through the retry loop and unmarshals the
// 2xx envelope into resData. A request runs at most maxRetries+1
// times; only retryable classifications re-run it.
func (c *apiClient) getJson(ctx context.Context, req request, resData any) *errors.ApiError {
	if req.auth && strings.TrimSpace(c.apiKey) == "" {
		return errors.MissingCredential()
	}

	doErr := c.retry.Do(ctx, c.maxRetries+1, req.label, func(attempt int) (error, retry.ExitStrategy) {
		if attempt > 0 {
			c.metrics.ObserveRetry(req.label, attempt)
		}
		apiErr := c.sendOnce(ctx, req, resData)
		if apiErr == nil {
			return nil, retry.StopNow
		}
		if apiErr.Retryable {
			return apiErr, retry.Continue
		}
		return apiErr, retry.StopNow
	})
	if doErr == nil {
		return nil
	}

	var apiErr *errors.ApiError
	if !goerrors.As(doErr, &apiErr) {
		// Context canceled or deadline hit while waiting between
		// attempts: surface it as a network-stage failure.
		apiErr = &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Kind:      errors.KIND_NETWORK,
			SourceErr: doErr,
			Retryable: false,
		}
	}
	c.metrics.ObserveError(req.label, apiErr.Kind)
	return apiErr
}

// sendOnce performs exactly one HTTP round trip and classifies the
// outcome. It never sleeps and never retries.
func (c *apiClient) sendOnce(ctx context.Context, req request, resData any) *errors.ApiError {
	if err := c.limiter.Wait(ctx); err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Kind:      errors.KIND_NETWORK,
			SourceErr: err,
			Retryable: false,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.urlFor(req), nil)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Kind:      errors.KIND_CLIENT_REQUEST,
			SourceErr: err,
			Retryable: false,
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.auth {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debugf("request to '%s' failed: %v", req.label, err)
		return errors.Classify(0, nil, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, readErr := io.ReadAll(res.Body)
	c.metrics.ObserveRequest(req.label, res.StatusCode, time.Since(start))
	if readErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_REQUEST,
			Kind:           errors.KIND_NETWORK,
			SourceErr:      readErr,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			Retryable:      true,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Debugf("request to '%s' returned http %d", req.label, res.StatusCode)
		return errors.Classify(res.StatusCode, body, nil)
	}

	if jsonErr := json.Unmarshal(body, resData); jsonErr != nil {
		return errors.ParseFailure(res.StatusCode, body, jsonErr)
	}

	if carrier, ok := resData.(domainErrorCarrier); ok {
		if errBody := carrier.EnvelopeError(); errBody != nil {
			return errors.DomainError(res.StatusCode, errBody)
		}
	}

	return nil
}

func (c *apiClient) urlFor(req request) string {
	endpoint := strings.TrimRight(c.baseUrl, "/") + "/" + strings.TrimLeft(req.path, "/")
	if encoded := req.query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}

// interpolate substitutes {placeholder} path segments. Pairs come as
// placeholder, value, placeholder, value...
func interpolate(path string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(path)
}

// toNilErr converts a typed *ApiError to a plain error so that a nil
// *ApiError does not become a non-nil error interface at the call
// site.
func toNilErr[T any](res T, apiErr *errors.ApiError) (T, error) {
	if apiErr != nil {
		return res, apiErr
	}
	return res, nil
}
