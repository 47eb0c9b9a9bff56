package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrNoHomeDirectory    = errors.New("could not determine home directory")
)

// Command errors.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrInvalidPageFlag   = errors.New("--page must be a positive integer")
	ErrEntityNotFound    = errors.New("entity not found")
)
