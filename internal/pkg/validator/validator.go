// Package validator provides a thin wrapper around the go-playground/validator
// library, enabling declarative struct validation with standardized error
// formatting.
//
// Besides the stock tags (required, eth_addr, numeric, ...), it registers:
//
//   - label: an optional display label, at most MaxLabelLength printable runes.
package validator

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	gvalidator "github.com/go-playground/validator/v10"
)

// MaxLabelLength is the longest value accepted by the "label" tag, in runes.
const MaxLabelLength = 32

// ErrValidationFailed is the first error of the joined chain returned by
// Validate when one or more rules are violated.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the singleton instance, initialized on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single field violation.
//
// Example: "'Token': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	if err := validator.RegisterValidation("label", validateLabel); err != nil {
		panic(err)
	}
}

// validateLabel accepts empty strings and short runs of printable runes.
func validateLabel(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) > MaxLabelLength {
		return false
	}

	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}

// formatError turns validator errors into ErrValidationFailed joined with one
// formatted message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags. It returns nil when every
// rule passes; otherwise the error matches ErrValidationFailed via errors.Is.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
