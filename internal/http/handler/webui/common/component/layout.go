package component

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
)

type LayoutVModel struct {
	Title string
	// LoggedIn selects between the login link and the logout button
	LoggedIn bool
	UserName string
	Alerts   []string
}

// Layout wraps a page body with the document head, the header bar and the
// pending alerts.
func Layout(vmodel LayoutVModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)

		title := vmodel.Title
		if title == "" {
			title = i18n.T(ctx, "layout.title")
		}

		h.Raw("<!DOCTYPE html>").
			Open("html", "lang", Lang(ctx)).
			Open("head").
			Open("meta", "charset", "utf-8").
			Open("meta", "name", "viewport", "content", "width=device-width, initial-scale=1").
			Element("title", title).
			Open("link", "rel", "stylesheet", "href", string(BaseURL(ctx, WithPath("/assets/style.css")))).
			Close("head").
			Open("body")

		h.Open("header").
			Open("div", "class", "box-wrapper").
			Open("div", "class", "box-left").
			Element("h1", i18n.T(ctx, "layout.title")).
			Close("div").
			Open("div", "class", "box-right")

		if vmodel.LoggedIn {
			h.Open("span", "class", "user-name").Text(vmodel.UserName).Close("span").
				Open("form", "method", "post", "action", string(BaseURL(ctx, WithPath("/auth/logout"))), "class", "inline").
				Open("button", "type", "submit", "class", "button").Text(i18n.T(ctx, "layout.logout")).Close("button").
				Close("form")
		} else {
			h.Link(string(BaseURL(ctx, WithPath("/auth/login"))), i18n.T(ctx, "layout.login"), "class", "button")
		}

		h.Component(LanguageSwitch())

		h.Close("div").Close("div").Close("header")

		h.Component(Alerts(vmodel.Alerts))

		h.Open("main").Component(body).Close("main")

		h.Close("body").Close("html")

		return h.Err()
	})
}

var languages = []string{"en", "fr"}

// LanguageSwitch links the current page in every supported language.
func LanguageSwitch() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)
		current := Lang(ctx)

		h.Open("nav", "class", "languages", "aria-label", i18n.T(ctx, "layout.language"))
		for _, lang := range languages {
			if lang == current {
				h.Element("strong", strings.ToUpper(lang))
				continue
			}

			href := CurrentURL(ctx, WithoutValues("lang", "*"), WithValues("lang", lang))
			h.Link(string(href), strings.ToUpper(lang), "hreflang", lang)
		}
		h.Close("nav")

		return h.Err()
	})
}

// Lang returns the code of the request locale.
func Lang(ctx context.Context) string {
	if locale := ctxi18n.Locale(ctx); locale != nil {
		return string(locale.Code())
	}

	return "en"
}

func Alerts(alerts []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(alerts) == 0 {
			return nil
		}

		h := NewHTML(ctx, w)

		h.Open("div", "class", "alerts", "role", "alert")
		for _, a := range alerts {
			h.Element("p", a, "class", "alert")
		}
		h.Close("div")

		return h.Err()
	})
}
