package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured  = errors.New("no API endpoint configured, use --api or 'openklant config set api <url>'")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidFilter    = errors.New("invalid filter, expected key=value")
	ErrEmptyToken       = errors.New("token must not be empty")
	ErrFromFileRequired = errors.New("--from-file is required")
)

