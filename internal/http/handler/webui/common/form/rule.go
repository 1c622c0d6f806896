package form

import (
	"context"
	"strconv"
	"strings"

	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

// ValidationRule represents a validation rule that can be applied at runtime
type ValidationRule interface {
	Validate(ctx context.Context, form *Form, field Field) error
}

// FormRule validates the form as a whole. Its error message is shown to
// the user as is.
type FormRule func(ctx context.Context, form *Form) error

// RequiredRule validates that a field is not empty
type RequiredRule struct{}

var _ ValidationRule = &RequiredRule{}

func (r RequiredRule) Validate(ctx context.Context, f *Form, field Field) error {
	value, exists := f.Values[field.Name]
	if !exists || strings.TrimSpace(value) == "" {
		return errors.New(i18n.T(ctx, "form.rules.required"))
	}

	return nil
}

// NumberRangeRule validates number ranges
type NumberRangeRule struct {
	Min *int
	Max *int
}

var _ ValidationRule = &NumberRangeRule{}

func (r NumberRangeRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if value == "" {
		return nil // Let required rule handle empty values
	}

	num, err := strconv.Atoi(value)
	if err != nil {
		return errors.New(i18n.T(ctx, "form.rules.number"))
	}

	if r.Min != nil && num < *r.Min {
		return errors.New(i18n.T(ctx, "form.rules.min", i18n.M{"min": *r.Min}))
	}

	if r.Max != nil && num > *r.Max {
		return errors.New(i18n.T(ctx, "form.rules.max", i18n.M{"max": *r.Max}))
	}

	return nil
}

// AnyOf fails with message when every named field is blank or unchecked.
func AnyOf(message string, names ...string) FormRule {
	return func(ctx context.Context, f *Form) error {
		for _, n := range names {
			value := strings.TrimSpace(f.Values[n])
			if value != "" && value != "0" {
				return nil
			}
		}

		return errors.New(i18n.T(ctx, message))
	}
}

func IntPtr(v int) *int {
	return &v
}
