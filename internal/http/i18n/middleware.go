package i18n

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/burnin/internal/slogx"
	"github.com/invopop/ctxi18n"
)

const (
	langQueryParam = "lang"
	langCookie     = "burnin_lang"
)

// Middleware selects the locale of the request from, in order, the lang
// query parameter, the lang cookie, the Accept-Language header and
// defaultLang.
func Middleware(defaultLang string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := defaultLang

			ctx := r.Context()

			if queryLang := r.URL.Query().Get(langQueryParam); queryLang != "" {
				lang = queryLang
				http.SetCookie(w, &http.Cookie{
					Name:     langCookie,
					Value:    queryLang,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			} else if cookie, err := r.Cookie(langCookie); err == nil && cookie.Value != "" {
				lang = cookie.Value
			} else if acceptLanguage := r.Header.Get("Accept-Language"); acceptLanguage != "" {
				lang = acceptLanguage
			}

			localized, err := ctxi18n.WithLocale(ctx, lang)
			if err != nil {
				slog.WarnContext(ctx, "could not set locale", slog.String("lang", lang), slogx.Error(err))

				localized, err = ctxi18n.WithLocale(ctx, defaultLang)
				if err != nil {
					slog.WarnContext(ctx, "could not set default locale", slogx.Error(err))
					localized = ctx
				}
			}

			ctx = localized

			next.ServeHTTP(w, r.WithContext(ctx))
		})

		return http.HandlerFunc(fn)
	}
}
