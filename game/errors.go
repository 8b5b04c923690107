package game

import "errors"

// Sentinel errors returned by the catalog, registry, and service.
// Transport adapters map these to wire status codes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
)
