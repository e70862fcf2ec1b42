package ddd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Entity[Person, string] = Person{}

type Person struct {
	id   string
	name string
}

func (p Person) SameIdentityAs(other Person) bool {
	return SameIdentity[Person, string](p, other)
}

func (p Person) Identity() string {
	return p.id
}

func TestSameIdentity(t *testing.T) {
	alice := Person{id: "p-1", name: "Alice"}
	renamed := Person{id: "p-1", name: "Alicia"}
	bob := Person{id: "p-2", name: "Alice"}

	assert.True(t, alice.SameIdentityAs(alice))
	assert.True(t, alice.SameIdentityAs(renamed))
	assert.True(t, renamed.SameIdentityAs(alice))
	assert.False(t, alice.SameIdentityAs(bob))
}
