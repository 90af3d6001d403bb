package errors

// MissingCredential is returned when the API key is empty or blank.
// It is detected before any network I/O.
func MissingCredential() *ApiError {
	return &ApiError{
		Stage:     STAGE_BEFORE_REQUEST,
		Kind:      KIND_MISSING_CREDENTIAL,
		Message:   "GoldRush API key is empty",
		Retryable: false,
	}
}
