package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/supabase-bootstrap/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedAPIKey is returned by [ParseAPIKeyClaims] when the key is not a
// well-formed JWT.
var ErrMalformedAPIKey = errors.New("malformed api key")

// IsJWTKey reports whether key has the three-segment compact JWS shape.
// Opaque keys such as "sb_publishable_..." return false.
func IsJWTKey(key string) bool {
	return strings.Count(strings.TrimSpace(key), ".") == 2
}

// ParseAPIKeyClaims decodes the claims of a JWT-shaped platform API key
// without verifying its signature.
//
// The signing secret is only known to the platform, so the claims are used
// for diagnostics (role, project ref, expiry) and never for authorization.
//
// Example usage:
//
//	claims, err := utils.ParseAPIKeyClaims(anonKey)
//	if err == nil && claims.IsPrivileged() {
//	    // refuse to use a service role key as the public key
//	}
func ParseAPIKeyClaims(key string) (*models.APIKeyClaims, error) {
	key = strings.TrimSpace(key)
	if !IsJWTKey(key) {
		return nil, ErrMalformedAPIKey
	}

	claims := &models.APIKeyClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAPIKey, err)
	}

	return claims, nil
}

// MaskKey renders a credential for logs: the first and last four characters
// are kept, everything in between is replaced. Short keys are fully masked.
func MaskKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return strings.Repeat("*", len(key))
	}
	return key[:visible] + "..." + key[len(key)-visible:]
}
