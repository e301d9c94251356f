package entity

import "errors"

// Domain errors
var (
	// Proposal errors
	ErrProposalNotFound = errors.New("proposal not found")

	// Generation errors
	ErrCompletionFailed    = errors.New("completion request failed")
	ErrEmptyCompletion     = errors.New("completion response is empty")
	ErrMalformedCompletion = errors.New("completion response does not match the expected shape")
	ErrUnsupportedFormat   = errors.New("unsupported document format")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidParameter = errors.New("invalid parameter")
)
