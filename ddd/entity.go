package ddd

// Entity as explained in the DDD book.
// Entities compare by identity, not by attributes.
type Entity[T any, ID comparable] interface {

	// SameIdentityAs return true if the identities are the same, regardless of other attributes.
	SameIdentityAs(other T) bool

	// Identity return the identity of this entity.
	Identity() ID
}

// SameIdentity compares a and b by Identity only. Both must be non-nil.
func SameIdentity[T any, ID comparable](a Entity[T, ID], b Entity[T, ID]) bool {
	return a.Identity() == b.Identity()
}
