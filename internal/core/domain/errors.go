package domain

import "errors"

// ============================================================================
// Sizing Errors
// ============================================================================

var (
	ErrInvalidInput = errors.New("flow rate and velocity must be greater than zero")
)

// InvalidInputMessage is what a user sees when ErrInvalidInput is returned.
const InvalidInputMessage = "Please enter valid values for flow rate and velocity."

// ============================================================================
// Field Errors
// ============================================================================

// Validation errors
var (
	ErrInvalidFieldDomain = errors.New("invalid field domain")
)

// Rendering errors
var (
	ErrRenderFailed = errors.New("field render failed")
)

// ============================================================================
// Cache Errors
// ============================================================================

var (
	ErrCacheMiss = errors.New("cache miss")
)
