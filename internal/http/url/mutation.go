// Package url builds the links of the web ui from the base and current
// request URLs.
package url

import (
	"fmt"
	"net/url"
	"path"
	"slices"

	"github.com/pkg/errors"
)

type URL = url.URL

var Parse = url.Parse

// Mutate returns a copy of u with every mutation applied in order.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	mutated := *u

	for _, fn := range funcs {
		fn(&mutated)
	}

	return &mutated
}

type MutationFunc func(u *url.URL)

func pairs(kv []string) url.Values {
	if len(kv)%2 != 0 {
		panic(errors.Errorf("expected key/value pairs, got %d values", len(kv)))
	}

	values := make(url.Values, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		values.Add(kv[i], kv[i+1])
	}

	return values
}

// WithValues adds query values, given as key/value pairs.
func WithValues(kv ...string) MutationFunc {
	values := pairs(kv)

	return func(u *url.URL) {
		query := u.Query()

		for key, vv := range values {
			for _, v := range vv {
				query.Add(key, v)
			}
		}

		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}

// WithoutValues removes query values, given as key/value pairs. The "*"
// value removes every value of the key.
func WithoutValues(kv ...string) MutationFunc {
	values := pairs(kv)

	return func(u *url.URL) {
		query := u.Query()

		for key, removed := range values {
			if slices.Contains(removed, "*") {
				query.Del(key)
				continue
			}

			kept := slices.DeleteFunc(query[key], func(v string) bool {
				return slices.Contains(removed, v)
			})

			if len(kept) == 0 {
				query.Del(key)
			} else {
				query[key] = kept
			}
		}

		u.RawQuery = query.Encode()
	}
}

// WithPath appends path segments to the path of the URL, so that links
// built on the base URL stay under it.
func WithPath(segments ...string) MutationFunc {
	return func(u *url.URL) {
		joined := path.Join(append([]string{"/", u.Path}, segments...)...)
		u.Path = joined
		u.RawPath = ""
	}
}

func WithPathf(format string, params ...any) MutationFunc {
	return WithPath(fmt.Sprintf(format, params...))
}

// WithFragment sets the fragment of the URL.
func WithFragment(fragment string) MutationFunc {
	return func(u *url.URL) {
		u.Fragment = fragment
	}
}
