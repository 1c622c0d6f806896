package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// HTML writes markup to an io.Writer and keeps the first write error.
// Text and attribute values are escaped, Raw values are not.
type HTML struct {
	w   io.Writer
	ctx context.Context
	err error
}

func NewHTML(ctx context.Context, w io.Writer) *HTML {
	return &HTML{w: w, ctx: ctx}
}

func (h *HTML) Raw(markup string) *HTML {
	if h.err != nil {
		return h
	}

	if _, err := io.WriteString(h.w, markup); err != nil {
		h.err = errors.WithStack(err)
	}

	return h
}

func (h *HTML) Text(text string) *HTML {
	return h.Raw(templ.EscapeString(text))
}

// Open writes an opening tag. Attributes are given as name/value pairs;
// an empty value renders a boolean attribute.
func (h *HTML) Open(tag string, attrs ...string) *HTML {
	h.Raw("<" + tag)

	for i := 0; i+1 < len(attrs); i += 2 {
		name, value := attrs[i], attrs[i+1]
		if value == "" {
			h.Raw(" " + name)
			continue
		}

		h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
	}

	return h.Raw(">")
}

func (h *HTML) Close(tag string) *HTML {
	return h.Raw("</" + tag + ">")
}

// Element writes a tag enclosing escaped text.
func (h *HTML) Element(tag string, text string, attrs ...string) *HTML {
	return h.Open(tag, attrs...).Text(text).Close(tag)
}

// Link writes an anchor. Unsafe URLs (javascript: and the like) are
// replaced by templ's failed sanitization placeholder.
func (h *HTML) Link(href string, text string, attrs ...string) *HTML {
	safe := templ.URL(href)
	return h.Element("a", text, append([]string{"href", string(safe)}, attrs...)...)
}

// Component renders a nested component.
func (h *HTML) Component(c templ.Component) *HTML {
	if h.err != nil || c == nil {
		return h
	}

	if err := c.Render(h.ctx, h.w); err != nil {
		h.err = errors.WithStack(err)
	}

	return h
}

func (h *HTML) Err() error {
	return h.err
}
