package context

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

type contextKey string

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)

func BaseURL(ctx context.Context) *url.URL {
	rawBaseURL, ok := ctx.Value(keyBaseURL).(string)
	if !ok {
		panic(errors.New("no base url in context"))
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return baseURL
}

func SetBaseURL(ctx context.Context, baseURL string) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		panic(errors.New("no current url in context"))
	}

	return currentURL
}

func SetCurrentURL(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, u)
}
