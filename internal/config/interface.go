package config

import "context"

// Loader is the interface for a format-specific plan loader.
type Loader interface {
	// Load reads plan configuration from the given paths, merges it, and
	// translates it into the format-agnostic model. Implementations must
	// return a model that already passed Validate.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
