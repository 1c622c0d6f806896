package gitlab

import "context"

type contextKey string

const contextKeyToken contextKey = "token"

// WithToken attaches the access token of the logged-in user to the context.
// Calls made with this context are authorized as that user.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKeyToken, token)
}

// Token returns the access token attached to the context, if any.
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextKeyToken).(string)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}
