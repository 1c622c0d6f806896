package form

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/component"
)

// DefaultFieldRenderer provides basic HTML field rendering
type DefaultFieldRenderer struct{}

// RenderField renders a field using basic HTML
func (r *DefaultFieldRenderer) RenderField(ctx FieldContext) templ.Component {
	switch ctx.Type {
	case TypeTextarea:
		return DefaultTextarea(ctx)
	case TypeCheckbox:
		return DefaultCheckbox(ctx)
	case TypeHidden:
		return HiddenInput(ctx)
	default:
		return DefaultInput(ctx)
	}
}

func DefaultInput(field FieldContext) templ.Component {
	return fieldGroup(field, func(h *component.HTML) {
		attrs := []string{"type", field.Type, "id", field.Name, "name", field.Name, "value", field.Value}
		h.Open("input", append(attrs, commonAttrs(field)...)...)
	})
}

func DefaultTextarea(field FieldContext) templ.Component {
	return fieldGroup(field, func(h *component.HTML) {
		attrs := []string{"id", field.Name, "name", field.Name}
		h.Open("textarea", append(attrs, commonAttrs(field)...)...).
			Text(field.Value).
			Close("textarea")
	})
}

func DefaultCheckbox(field FieldContext) templ.Component {
	return fieldGroup(field, func(h *component.HTML) {
		attrs := []string{"type", "checkbox", "id", field.Name, "name", field.Name, "value", "true"}
		if field.Value == "true" {
			attrs = append(attrs, "checked", "")
		}
		h.Open("input", append(attrs, commonAttrs(field)...)...)
	})
}

func HiddenInput(field FieldContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return component.NewHTML(ctx, w).
			Open("input", "type", "hidden", "name", field.Name, "value", field.Value).
			Err()
	})
}

func fieldGroup(field FieldContext, input func(h *component.HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := component.NewHTML(ctx, w)

		h.Open("div", "class", "form-group").
			Element("label", field.Label, "for", field.Name)

		input(h)

		if field.Error != "" {
			h.Element("span", field.Error, "class", "field-error")
		}

		h.Close("div")

		return h.Err()
	})
}

func commonAttrs(field FieldContext) []string {
	attrs := make([]string, 0)

	if field.Placeholder != "" {
		attrs = append(attrs, "placeholder", field.Placeholder)
	}

	if field.Required {
		attrs = append(attrs, "required", "")
	}

	if field.Disabled {
		attrs = append(attrs, "disabled", "")
	}

	names := make([]string, 0, len(field.Attributes))
	for name := range field.Attributes {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		attrs = append(attrs, name, fmt.Sprintf("%v", field.Attributes[name]))
	}

	return attrs
}
