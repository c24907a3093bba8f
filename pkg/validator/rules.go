package validator

import "regexp"

// basicEmailRegex requires a local part, an "@" and a domain containing a
// dot, with no whitespace or extra "@" anywhere.
var basicEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails for the empty string. Whitespace counts as a value, so
// pair it with a format rule when blanks must be rejected.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: "validation.required",
		},
	}
}

// BasicEmail performs the lightweight shape check used for signup forms.
// It is deliberately looser than RFC 5322.
func BasicEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return basicEmailRegex.MatchString(value) },
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}
