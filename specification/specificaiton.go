package specification

import "context"

// Specification interface.
// Use New to create a specification from a predicate, and
// combine specifications with And, Or, Not, Conjunction and Disjunction.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification satisfied when the current specification and all others are.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification satisfied when the current specification or any other is.
	Disjunction(others ...Specification[T]) Specification[T]
}

func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	return &base[T]{Predicate: predicate}
}

// And used to create a new specification that is the AND of two other specifications.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) && right.IsSatisfiedBy(ctx, t)
	})
}

// Or used to create a new specification that is the OR of two other specifications.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) || right.IsSatisfiedBy(ctx, t)
	})
}

// Not used to create a new specification that is the inverse (NOT) of the given spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return !spec.IsSatisfiedBy(ctx, t)
	})
}

// Conjunction is satisfied when every spec is. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when any spec is. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, t) {
				return true
			}
		}
		return false
	})
}
