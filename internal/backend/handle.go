package backend

import (
	"time"

	"github.com/supabase-community/supabase-go"
)

// Handle is the shared client handle produced by [Load].
//
// A Handle is immutable: its client and metadata are fixed at construction
// and it is safe for concurrent reads. It has no teardown; it lives as long
// as its holders keep it.
type Handle struct {
	id        string
	url       string
	keyRole   string
	createdAt time.Time
	client    *supabase.Client
}

// ID returns the identifier assigned to this handle at load time.
func (h *Handle) ID() string {
	return h.id
}

// URL returns the endpoint address the client was created for.
func (h *Handle) URL() string {
	return h.url
}

// Client returns the backend client. Every call returns the same pointer.
func (h *Handle) Client() *supabase.Client {
	return h.client
}

// CreatedAt returns the time the handle was loaded.
func (h *Handle) CreatedAt() time.Time {
	return h.createdAt
}

// KeyRole returns the role claim of the public key, or an empty string when
// the key is opaque.
func (h *Handle) KeyRole() string {
	return h.keyRole
}
