package types

import (
	"encoding/json"
)

// Envelope is the uniform wire wrapper around every endpoint's payload:
//
//	{ "data": ..., "error": ..., "pagination": ..., "links": ... }
//
// Data and Error are mutually exclusive in well-formed responses, but the
// model tolerates both absent and, defensively, both present.
type Envelope[T any] struct {
	Data       *T         `json:"data"`
	Error      *ErrorBody `json:"error"`
	Pagination *PageInfo  `json:"pagination"`
	Links      *PageLinks `json:"links"`
}

// EnvelopeError exposes the error field without knowledge of T.
// The dispatcher uses it to detect business-level rejections that
// arrive over a 2xx status.
func (e *Envelope[T]) EnvelopeError() *ErrorBody {
	return e.Error
}

// ErrorBody is the error object inside an envelope.
type ErrorBody struct {
	Code    *int64          `json:"code"`
	Message *string         `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// PageInfo is the pagination object returned by paged endpoints.
// Every field is optional on the wire.
type PageInfo struct {
	HasMore    *bool   `json:"has_more"`
	PageNumber *uint32 `json:"page_number"`
	PageSize   *uint32 `json:"page_size"`
	TotalCount *uint64 `json:"total_count"`
}

// More reports whether the API signalled another page.
// An absent has_more means no more pages.
func (p *PageInfo) More() bool {
	return p != nil && p.HasMore != nil && *p.HasMore
}

// PageLinks holds cursor-based pagination links returned by v3 endpoints.
type PageLinks struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

// Quote currencies accepted by the pricing parameters.
const (
	QuoteUSD = "USD"
	QuoteCAD = "CAD"
	QuoteEUR = "EUR"
	QuoteSGD = "SGD"
	QuoteINR = "INR"
	QuoteJPY = "JPY"
	QuoteVND = "VND"
	QuoteCNY = "CNY"
	QuoteKRW = "KRW"
	QuoteRUB = "RUB"
	QuoteTRY = "TRY"
	QuoteNGN = "NGN"
	QuoteARS = "ARS"
	QuoteAUD = "AUD"
	QuoteCHF = "CHF"
	QuoteGBP = "GBP"
	QuoteBTC = "BTC"
	QuoteETH = "ETH"
)

// Gas event types for gas price queries.
const (
	GasEventErc20        = "erc20"
	GasEventNativeTokens = "nativetokens"
	GasEventUniswapV3    = "uniswapv3"
)
