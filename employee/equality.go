package employee

import (
	"github.com/go-leo/employee-equality/ddd"
	"github.com/go-leo/gox/errorx"
	"github.com/mitchellh/hashstructure"
)

var _ ddd.Entity[*Employee, ID] = (*Employee)(nil)

// Identity returns the id, the only attribute that takes part in equality.
func (e *Employee) Identity() ID {
	return e.id
}

// SameIdentityAs reports whether other has the same id. Names are ignored.
func (e *Employee) SameIdentityAs(other *Employee) bool {
	if e == nil || other == nil {
		return false
	}
	return ddd.SameIdentity[*Employee, ID](e, other)
}

// Equals is true iff other is non-nil and has the same id.
func (e *Employee) Equals(other *Employee) bool {
	return e.SameIdentityAs(other)
}

// Hash is derived from the id only, so equal employees hash identically.
func (e *Employee) Hash() uint64 {
	if e == nil {
		return 0
	}
	// hashing an int cannot fail
	return errorx.Ignore(hashstructure.Hash(e.id, nil))
}

// Equal is the nil-safe comparison: two nils are equal, nil never equals an employee.
func Equal(a *Employee, b *Employee) bool {
	if a == nil {
		return b == nil
	}
	return a.Equals(b)
}

// NotEqual is the negation of Equal.
func NotEqual(a *Employee, b *Employee) bool {
	return !Equal(a, b)
}
