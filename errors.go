package docstore

import "github.com/kailas-cloud/docstore/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrMissingField   = domain.ErrMissingField
	ErrInvalidRequest = domain.ErrInvalidRequest
)

// MissingFieldError names the required field a saved document lacked.
// Use errors.As() to extract it.
type MissingFieldError = domain.MissingFieldError
