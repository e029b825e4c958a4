// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer checks against the hosted backend
// gateway.
//
// The primary abstraction is [HealthProbe], which verifies that the endpoint
// and public key from the bootstrap configuration are accepted by the
// gateway. The package ships an HTTP implementation ([NewHTTPHealthProbe])
// built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/health_probe_mock.go -package=mock

// HealthProbe checks that the backend gateway is reachable and accepts the
// configured public key.
type HealthProbe interface {
	// Check performs one probe request. It returns nil on a 2xx response and
	// a wrapped sentinel error otherwise.
	Check(ctx context.Context) error
}
