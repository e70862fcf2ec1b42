package builder

import "context"

// Builder assembles a T, reporting an error when the collected parts are invalid.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}
