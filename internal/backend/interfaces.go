package backend

import (
	"github.com/supabase-community/supabase-go"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_factory_mock.go -package=mock

// ClientFactory creates backend clients. [SupabaseFactory] returns the
// implementation backed by the platform library.
type ClientFactory interface {
	// NewClient builds a client for the project at url authorised by key.
	NewClient(url, key string, options *supabase.ClientOptions) (*supabase.Client, error)
}

// IDGenerator issues identifiers for loaded handles.
type IDGenerator interface {
	Generate() string
}
