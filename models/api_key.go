// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the "role" claim of platform-issued API keys.
const (
	// RoleAnon is the role of the public (anonymous) key. It is safe to ship
	// inside client-distributed binaries.
	RoleAnon = "anon"

	// RoleServiceRole is the role of the privileged key that bypasses row
	// level security. It must never be used as the public key.
	RoleServiceRole = "service_role"
)

// APIKeyClaims is the claim set embedded into JWT-shaped API keys issued by
// the backend platform.
//
// Newer opaque keys (e.g. "sb_publishable_...") carry no claims; for them
// [APIKeyClaims] is never constructed.
type APIKeyClaims struct {
	// Role is the Postgres role the key maps to ("anon" or "service_role").
	Role string `json:"role"`

	// Ref is the project reference the key was issued for. It matches the
	// first label of the project host (<ref>.supabase.co).
	Ref string `json:"ref"`

	jwt.RegisteredClaims
}

// IsPrivileged reports whether the key grants the privileged service role.
func (c *APIKeyClaims) IsPrivileged() bool {
	return c.Role == RoleServiceRole
}

// IsExpired reports whether the key has an "exp" claim that lies before now.
// Keys without an expiry never expire.
func (c *APIKeyClaims) IsExpired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}
