package form

import "github.com/a-h/templ"

const (
	TypeText     = "text"
	TypeNumber   = "number"
	TypeTextarea = "textarea"
	TypeCheckbox = "checkbox"
	TypeHidden   = "hidden"
)

// Field represents a form field defined at runtime
type Field struct {
	Name        string
	Label       string
	Type        string
	Required    bool
	Validation  []ValidationRule
	Placeholder string
	// Default returns the value of the field on a new or reset form
	Default    func() string
	Attributes map[string]any
}

func (f Field) IsCheckbox() bool {
	return f.Type == TypeCheckbox
}

func (f Field) defaultValue() string {
	if f.Default == nil {
		return ""
	}

	return f.Default()
}

// FieldContext contains all information needed to render a form field
type FieldContext struct {
	Name        string
	Value       string
	Label       string
	Type        string
	Error       string
	Required    bool
	Disabled    bool
	Placeholder string
	Attributes  map[string]any
}

// FieldRenderer describes a component that can render a single field
type FieldRenderer interface {
	RenderField(ctx FieldContext) templ.Component
}
