package backend

import (
	"github.com/supabase-community/supabase-go"
)

// FactoryFunc adapts a plain constructor function to [ClientFactory].
type FactoryFunc func(url, key string, options *supabase.ClientOptions) (*supabase.Client, error)

// NewClient calls f.
func (f FactoryFunc) NewClient(url, key string, options *supabase.ClientOptions) (*supabase.Client, error) {
	return f(url, key, options)
}

// SupabaseFactory returns the factory backed by supabase.NewClient.
func SupabaseFactory() ClientFactory {
	return FactoryFunc(supabase.NewClient)
}

// isNilFactory reports whether factory cannot be called: a nil interface or a
// nil FactoryFunc wrapped in one.
func isNilFactory(factory ClientFactory) bool {
	if factory == nil {
		return true
	}
	if f, ok := factory.(FactoryFunc); ok && f == nil {
		return true
	}
	return false
}
