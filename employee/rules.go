package employee

import (
	"context"
	"strings"

	"github.com/go-leo/employee-equality/specification"
)

type rule[T any] struct {
	field   string
	name    string
	message string
	spec    specification.Specification[T]
}

func (r rule[T]) check(ctx context.Context, v T) error {
	if r.spec.IsSatisfiedBy(ctx, v) {
		return nil
	}
	return newValidationError(r.field, r.name, r.message)
}

var isPositive = specification.New(func(_ context.Context, id ID) bool {
	return id > 0
})

var isBlank = specification.New(func(_ context.Context, s string) bool {
	return strings.TrimSpace(s) == ""
})

var (
	idRule        = rule[ID]{field: FieldID, name: RulePositive, message: MessageIDNotPositive, spec: isPositive}
	firstNameRule = rule[string]{field: FieldFirstName, name: RuleNotBlank, message: MessageFirstNameBlank, spec: isBlank.Not()}
	lastNameRule  = rule[string]{field: FieldLastName, name: RuleNotBlank, message: MessageLastNameBlank, spec: isBlank.Not()}
)
