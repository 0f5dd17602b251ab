package engine

import "errors"

// Sentinel errors
var (
	// ErrInvalidConfiguration rejects settings that would break the simulation invariants
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
