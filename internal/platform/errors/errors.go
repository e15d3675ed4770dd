package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrNetwork            = errors.New("network failure")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrInvalidConfig      = errors.New("invalid config")
)
