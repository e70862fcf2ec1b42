package ddd

// ValueObject compares by the values of its attributes and has no identity of its own,
// so two value objects holding the same attributes are interchangeable.
type ValueObject[T any] interface {
	// SameValueAs return true if every attribute equals the one in other.
	SameValueAs(other T) bool
}
