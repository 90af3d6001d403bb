package api

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goldrush-dev/goldrush-go/errors"
)

var (
	chainNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	hexAddrRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRe    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// Requests with an obviously malformed path segment are rejected
// locally so a typo never burns a retry budget against the API.

func validateChainName(chainName string) *errors.ApiError {
	if chainName == "" || !chainNameRe.MatchString(chainName) {
		return invalidRequest(fmt.Sprintf("invalid chain name %q", chainName))
	}
	return nil
}

func validateTxHash(txHash string) *errors.ApiError {
	if !txHashRe.MatchString(txHash) {
		return invalidRequest(fmt.Sprintf("invalid transaction hash %q", txHash))
	}
	return nil
}

// validateWalletAddress only accepts hex addresses. Endpoints that
// resolve ENS or Lens handles must not use it; they take any
// non-blank string.
func validateWalletAddress(address string) *errors.ApiError {
	if !hexAddrRe.MatchString(address) {
		return invalidRequest(fmt.Sprintf("invalid wallet address %q", address))
	}
	return nil
}

func validateNotBlank(field, value string) *errors.ApiError {
	if strings.TrimSpace(value) == "" {
		return invalidRequest(fmt.Sprintf("%s must not be blank", field))
	}
	return nil
}

func invalidRequest(msg string) *errors.ApiError {
	return &errors.ApiError{
		Stage:     errors.STAGE_BEFORE_REQUEST,
		Kind:      errors.KIND_CLIENT_REQUEST,
		Message:   msg,
		Retryable: false,
	}
}
