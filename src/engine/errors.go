package engine

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrNotFound is returned when a lookup references an id that is not in the store.
var ErrNotFound = errors.New("entity not found")

// ErrUnknownView is returned by the query facade for an unrecognized view name.
var ErrUnknownView = errors.New("unknown view")

// ViolationCode classifies a rejected record.
type ViolationCode string

const (
	// CodeConstraintViolation covers uniqueness, referential and domain failures.
	CodeConstraintViolation ViolationCode = "constraint_violation"
	// CodeInvalidCombination covers cross-field rule failures.
	CodeInvalidCombination ViolationCode = "invalid_combination"
)

// Violation describes one broken rule on one field of a record. A record
// is checked against every rule before rejection, so a caller sees all of
// its violations in one error.
type Violation struct {
	Code    ViolationCode
	Field   string
	Rule    string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: field %q rule %q: %s", v.Code, v.Field, v.Rule, v.Message)
}

// NewViolation builds a constraint violation for a field and rule.
func NewViolation(field, rule, message string) *Violation {
	return &Violation{Code: CodeConstraintViolation, Field: field, Rule: rule, Message: message}
}

// NewCombinationViolation builds a cross-field violation.
func NewCombinationViolation(field, rule, message string) *Violation {
	return &Violation{Code: CodeInvalidCombination, Field: field, Rule: rule, Message: message}
}

// Violations unpacks every Violation aggregated inside err. A nil err
// yields nil.
func Violations(err error) []*Violation {
	var out []*Violation
	for _, e := range multierr.Errors(err) {
		var v *Violation
		if errors.As(e, &v) {
			out = append(out, v)
		}
	}
	return out
}
