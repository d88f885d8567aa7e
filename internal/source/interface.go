package source

import "context"

// Resolver derives a sanitized, filesystem-safe title for a source.
type Resolver interface {
	Title(ctx context.Context, src Source) (string, error)
}
