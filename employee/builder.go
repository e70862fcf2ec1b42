package employee

import (
	"context"

	"github.com/go-leo/employee-equality/builder"
)

var _ builder.Builder[*Employee] = (*Builder)(nil)

// Builder collects the fields of an Employee and validates them together in Build.
type Builder struct {
	id        ID
	firstName string
	lastName  string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) ID(id ID) *Builder {
	b.id = id
	return b
}

func (b *Builder) FirstName(firstName string) *Builder {
	b.firstName = firstName
	return b
}

func (b *Builder) LastName(lastName string) *Builder {
	b.lastName = lastName
	return b
}

func (b *Builder) Build(ctx context.Context) (*Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return newEmployee(ctx, b.id, b.firstName, b.lastName)
}
