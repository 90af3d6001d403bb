package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	// KIND_MISSING_CREDENTIAL means the API key was empty or blank.
	// Detected before any network I/O; never retried.
	KIND_MISSING_CREDENTIAL = "missing-credential"

	// KIND_NETWORK covers DNS, TLS, connect and timeout failures.
	// Transient; eligible for retry.
	KIND_NETWORK = "network"

	// KIND_RATE_LIMITED is an HTTP 429 from the API.
	// Transient; eligible for retry.
	KIND_RATE_LIMITED = "rate-limited"

	// KIND_CLIENT_REQUEST is a 4xx other than 429, or a request the
	// client rejected locally (bad address, bad chain name).
	// Retrying cannot fix the request; never retried.
	KIND_CLIENT_REQUEST = "client-request"

	// KIND_SERVER is a 5xx from the API.
	// Transient; eligible for retry.
	KIND_SERVER = "server"

	// KIND_JSON_PARSE means a 2xx response body did not match the
	// expected envelope shape. Never retried.
	KIND_JSON_PARSE = "json-parse"

	// KIND_API_DOMAIN is a well-formed envelope whose error field is
	// populated: a business-level rejection delivered over 2xx.
	// Never retried.
	KIND_API_DOMAIN = "api-domain"
)

type ApiError struct {
	Stage          string
	Kind           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// Message and GoldRushCode are filled best-effort from the
	// error body when the API returned one.
	Message      string
	GoldRushCode int64

	// Retryable reports whether the dispatcher may attempt the
	// request again.
	Retryable bool
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else if e.Message != "" {
		err = e.Message
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to GoldRush failed during '%s' stage with error kind '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Kind, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&goldrush_errors.ApiError{}), &goldrush_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
