package component

import (
	"context"
	"time"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/burnin/internal/http/context"
	httpURL "github.com/bornholm/burnin/internal/http/url"
)

var (
	WithPath      = httpURL.WithPath
	WithoutValues = httpURL.WithoutValues
	WithValues    = httpURL.WithValues
)

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	mutated := httpURL.Mutate(httpCtx.CurrentURL(ctx), funcs...)
	return templ.SafeURL(mutated.String())
}

var User = httpCtx.User

// FormatUTC renders a timestamp the way the dashboard displays dates,
// or placeholder for a zero time.
func FormatUTC(t time.Time, placeholder string) string {
	if t.IsZero() {
		return placeholder
	}

	return t.UTC().Format(time.RFC1123)
}
