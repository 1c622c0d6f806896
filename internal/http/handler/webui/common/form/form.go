package form

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrInvalid        = errors.New("invalid form")
)

// Form represents a form with fields defined at runtime
type Form struct {
	Fields []Field
	Values map[string]string
	Errors map[string]string
	// Alerts are the errors of form level rules
	Alerts  []string
	options *FormOptions

	mu         sync.Mutex
	submitting bool
}

// New creates a form from field definitions, with default values set
func New(fields []Field, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		Fields:  fields,
		Values:  make(map[string]string),
		Errors:  make(map[string]string),
		Alerts:  make([]string, 0),
		options: options,
	}

	form.Reset()

	return form
}

// Handle reads the submitted values of the form fields. An unchecked
// checkbox is read as an empty value.
func (f *Form) Handle(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "failed to parse form")
	}

	for _, field := range f.Fields {
		value := r.PostFormValue(field.Name)

		if field.IsCheckbox() {
			if value != "" {
				value = "true"
			}
		}

		f.Values[field.Name] = value
	}

	return nil
}

// IsValid validates all fields then the form level rules
func (f *Form) IsValid(ctx context.Context) bool {
	f.Errors = make(map[string]string)
	f.Alerts = make([]string, 0)

	for _, field := range f.Fields {
		for _, rule := range field.Validation {
			if err := rule.Validate(ctx, f, field); err != nil {
				f.Errors[field.Name] = err.Error()
				break // Stop at first error
			}
		}
	}

	for _, rule := range f.options.Rules {
		if err := rule(ctx, f); err != nil {
			f.Alerts = append(f.Alerts, err.Error())
		}
	}

	return len(f.Errors) == 0 && len(f.Alerts) == 0
}

// Submit validates the form and, if valid, runs commit. The form is in
// flight from the call until commit returns, and a concurrent Submit is
// rejected with ErrSubmitInFlight. onSuccess is called, and the form
// reset, only if commit succeeds. The values are kept otherwise.
func (f *Form) Submit(ctx context.Context, commit func(ctx context.Context) error, onSuccess func()) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return errors.WithStack(ErrSubmitInFlight)
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if !f.IsValid(ctx) {
		return errors.WithStack(ErrInvalid)
	}

	if err := commit(ctx); err != nil {
		return errors.WithStack(err)
	}

	f.Reset()

	if onSuccess != nil {
		onSuccess()
	}

	return nil
}

// Submitting reports whether a submission is in flight
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

// Reset restores the default value of every field and clears errors
func (f *Form) Reset() {
	for _, field := range f.Fields {
		f.Values[field.Name] = field.defaultValue()
	}

	f.Errors = make(map[string]string)
	f.Alerts = make([]string, 0)
}

func (f *Form) Value(name string) string {
	return f.Values[name]
}

// Checked reports whether a checkbox field is checked
func (f *Form) Checked(name string) bool {
	return f.Values[name] == "true"
}

// Lines splits a multiline value, dropping blank lines
func (f *Form) Lines(name string) []string {
	raw := strings.ReplaceAll(f.Values[name], "\r\n", "\n")

	lines := make([]string, 0)
	for _, l := range strings.Split(raw, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}

		lines = append(lines, l)
	}

	return lines
}

// GetFieldContext returns the rendering context for a specific field
func (f *Form) GetFieldContext(fieldName string) (FieldContext, error) {
	// Find the field
	var field *Field
	for i := range f.Fields {
		if f.Fields[i].Name == fieldName {
			field = &f.Fields[i]
			break
		}
	}

	if field == nil {
		return FieldContext{}, errors.Errorf("field %s not found", fieldName)
	}

	ctx := FieldContext{
		Name:        field.Name,
		Value:       f.Values[field.Name],
		Label:       field.Label,
		Type:        field.Type,
		Error:       f.Errors[field.Name],
		Required:    field.Required,
		Disabled:    f.Submitting(),
		Placeholder: field.Placeholder,
		Attributes:  field.Attributes,
	}

	return ctx, nil
}

// RenderField renders a specific field using the configured renderer
func (f *Form) RenderField(fieldName string) (templ.Component, error) {
	ctx, err := f.GetFieldContext(fieldName)
	if err != nil {
		return nil, err
	}

	return f.options.Renderer.RenderField(ctx), nil
}

// GetFieldNames returns all field names
func (f *Form) GetFieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}
