package ddd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ ValueObject[Address] = Address{}

type Address struct {
	country  string
	province string
	city     string
}

func (a Address) SameValueAs(other Address) bool {
	return a.country == other.country && a.province == other.province && a.city == other.city
}

func TestSameValueAs(t *testing.T) {
	a := Address{country: "CN", province: "Zhejiang", city: "Hangzhou"}
	b := Address{country: "CN", province: "Zhejiang", city: "Hangzhou"}
	c := Address{country: "CN", province: "Zhejiang", city: "Ningbo"}

	assert.True(t, a.SameValueAs(b))
	assert.False(t, a.SameValueAs(c))
}
