package backend

import "errors"

var (
	// ErrFactoryUnavailable is returned by [Load] when no client factory is
	// available. No handle is produced.
	ErrFactoryUnavailable = errors.New("backend client factory is unavailable")
	// ErrClientCreation wraps an error returned by the client factory.
	ErrClientCreation = errors.New("backend client creation failed")
	// ErrInvalidHandle is returned when the factory reports success but
	// produces no client.
	ErrInvalidHandle = errors.New("backend client factory returned no client")
)
