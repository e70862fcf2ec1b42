package employee

import (
	"context"
	"fmt"
	"strings"
)

// ID identifies an Employee. Valid ids are positive.
type ID int

// Employee is a mutable record whose equality is decided by its id alone.
// Every write goes through validation, so a value obtained from New, Builder or
// UnmarshalJSON always has a positive id and non-blank, trimmed names.
//
// Employee is not safe for concurrent mutation.
type Employee struct {
	id        ID
	firstName string
	lastName  string
}

// New validates id, firstName and lastName in that order and returns the first failure.
// No Employee is returned when validation fails.
func New(id ID, firstName string, lastName string) (*Employee, error) {
	return newEmployee(context.Background(), id, firstName, lastName)
}

func newEmployee(ctx context.Context, id ID, firstName string, lastName string) (*Employee, error) {
	if err := idRule.check(ctx, id); err != nil {
		return nil, err
	}
	if err := firstNameRule.check(ctx, firstName); err != nil {
		return nil, err
	}
	if err := lastNameRule.check(ctx, lastName); err != nil {
		return nil, err
	}
	return &Employee{
		id:        id,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
	}, nil
}

func (e *Employee) ID() ID {
	return e.id
}

func (e *Employee) FirstName() string {
	return e.firstName
}

func (e *Employee) LastName() string {
	return e.lastName
}

func (e *Employee) FullName() FullName {
	return FullName{First: e.firstName, Last: e.lastName}
}

// SetID replaces the id. The previous id is kept on error.
func (e *Employee) SetID(id ID) error {
	if err := idRule.check(context.Background(), id); err != nil {
		return err
	}
	e.id = id
	return nil
}

// SetFirstName stores the trimmed name. The previous name is kept on error.
func (e *Employee) SetFirstName(firstName string) error {
	if err := firstNameRule.check(context.Background(), firstName); err != nil {
		return err
	}
	e.firstName = strings.TrimSpace(firstName)
	return nil
}

// SetLastName stores the trimmed name. The previous name is kept on error.
func (e *Employee) SetLastName(lastName string) error {
	if err := lastNameRule.check(context.Background(), lastName); err != nil {
		return err
	}
	e.lastName = strings.TrimSpace(lastName)
	return nil
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee(ID: %d, Full Name: %s)", e.id, e.FullName())
}
