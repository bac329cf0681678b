package utils

import "errors"

var (
	ErrMissingCredential   = errors.New("missing api credential")
	ErrUnsupportedProvider = errors.New("unsupported completion provider")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrGatewayFailure      = errors.New("gateway failure")
	ErrInternalFailure     = errors.New("internal failure")
	ErrInvalidCompletion   = errors.New("completion is not valid json")
)
