package component

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is omitted by the default goldmark renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
)

// Markdown renders a comment written in Markdown.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(source), &buf); err != nil {
			return errors.WithStack(err)
		}

		if _, err := buf.WriteTo(w); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}
