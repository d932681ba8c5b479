package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
