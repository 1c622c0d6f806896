package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"
)

type ErrorPageVModel struct {
	Message string
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)

		h.Open("section", "class", "error").
			Element("h2", i18n.T(ctx, "error.title")).
			Element("p", vmodel.Message).
			Link(string(BaseURL(ctx, WithPath("/"))), i18n.T(ctx, "error.back"), "class", "button").
			Close("section")

		return h.Err()
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		user := User(ctx)

		layout := LayoutVModel{
			LoggedIn: user != nil,
		}

		if user != nil {
			layout.UserName = user.Name
		}

		return Layout(layout, body).Render(ctx, w)
	})
}
