package parsers

import (
	"encoding/json"

	"github.com/goldrush-dev/goldrush-go/types"
)

// The API emits error bodies in two shapes. Envelope style:
//
//	{"error": {"code": 501, "message": "..."}}
//
// and flat style (older endpoints):
//
//	{"error": true, "error_code": 501, "error_message": "..."}
//
// Both are decoded here so that error handling stays in one place.
// Callers get (empty, false) for bodies that match neither shape.

type envelopeErr struct {
	Error *types.ErrorBody `json:"error"`
}

type flatErr struct {
	Error        bool    `json:"error"`
	ErrorCode    *int64  `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

func ErrorBodyFromBytes(data []byte) (types.ErrorBody, bool) {
	var empty types.ErrorBody
	if len(data) == 0 {
		return empty, false
	}

	var env envelopeErr
	if err := json.Unmarshal(data, &env); err == nil && env.Error != nil {
		return *env.Error, true
	}

	var flat flatErr
	if err := json.Unmarshal(data, &flat); err == nil && flat.Error {
		return types.ErrorBody{
			Code:    flat.ErrorCode,
			Message: flat.ErrorMessage,
		}, true
	}

	return empty, false
}
