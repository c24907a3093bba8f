// Package validator provides composable validation rules.
//
// Each rule pairs a check with the error reported when it fails. First runs
// the rules in order and stops at the first failure:
//
//	err := validator.First(
//		validator.Required("email", req.Email),
//		validator.BasicEmail("email", req.Email),
//	)
package validator

import (
	"errors"
	"fmt"
)

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field          string
	Message        string
	TranslationKey string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// First executes rules in order and returns the first failure as a
// ValidationError, or nil.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
