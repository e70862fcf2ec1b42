package employee

import "github.com/go-leo/employee-equality/ddd"

var _ ddd.ValueObject[FullName] = FullName{}

// FullName is a value object, two full names are the same when both parts match.
type FullName struct {
	First string
	Last  string
}

func (n FullName) SameValueAs(other FullName) bool {
	return n.First == other.First && n.Last == other.Last
}

func (n FullName) String() string {
	return n.First + " " + n.Last
}
