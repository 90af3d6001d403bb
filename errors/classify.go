package errors

import (
	"net/http"

	"github.com/goldrush-dev/goldrush-go/parsers"
	"github.com/goldrush-dev/goldrush-go/types"
)

// Classify maps a single request outcome to a typed ApiError.
// It is pure: given the same status, body and transport error it
// always produces the same classification.
//
// Rules:
//   - transport failure -> network, retryable
//   - 429 -> rate-limited, retryable
//   - 5xx -> server, retryable
//   - any other non-2xx -> client-request, not retryable
//
// 2xx outcomes are classified by ParseFailure and DomainError, since
// they depend on whether the envelope parsed.
func Classify(httpStatus int, body []byte, transportErr error) *ApiError {
	if transportErr != nil {
		return &ApiError{
			Stage:     STAGE_REQUEST,
			Kind:      KIND_NETWORK,
			SourceErr: transportErr,
			Retryable: true,
		}
	}

	kind := KIND_CLIENT_REQUEST
	retryable := false
	switch {
	case httpStatus == http.StatusTooManyRequests:
		kind = KIND_RATE_LIMITED
		retryable = true
	case httpStatus >= 500 && httpStatus <= 599:
		kind = KIND_SERVER
		retryable = true
	}

	apiErr := &ApiError{
		Stage:          STAGE_AFTER_REQUEST,
		Kind:           kind,
		Body:           body,
		HttpStatusCode: httpStatus,
		Retryable:      retryable,
	}
	fillFromBody(apiErr, body)
	return apiErr
}

// ParseFailure classifies a 2xx response whose body did not match the
// expected envelope shape. Not retryable.
func ParseFailure(httpStatus int, body []byte, sourceErr error) *ApiError {
	return &ApiError{
		Stage:          STAGE_AFTER_REQUEST,
		Kind:           KIND_JSON_PARSE,
		SourceErr:      sourceErr,
		Body:           body,
		HttpStatusCode: httpStatus,
		Retryable:      false,
	}
}

// DomainError classifies a well-formed envelope whose error field is
// populated. Not retryable: the API gave a definitive business answer.
func DomainError(httpStatus int, errBody *types.ErrorBody) *ApiError {
	apiErr := &ApiError{
		Stage:          STAGE_AFTER_REQUEST,
		Kind:           KIND_API_DOMAIN,
		HttpStatusCode: httpStatus,
		Retryable:      false,
	}
	if errBody != nil {
		if errBody.Message != nil {
			apiErr.Message = *errBody.Message
		}
		if errBody.Code != nil {
			apiErr.GoldRushCode = *errBody.Code
		}
	}
	return apiErr
}

func fillFromBody(apiErr *ApiError, body []byte) {
	errBody, ok := parsers.ErrorBodyFromBytes(body)
	if !ok {
		return
	}
	if errBody.Message != nil {
		apiErr.Message = *errBody.Message
	}
	if errBody.Code != nil {
		apiErr.GoldRushCode = *errBody.Code
	}
}
