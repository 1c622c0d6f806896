package oauth

import "github.com/pkg/errors"

var (
	// ErrExchangeFailed is returned when the provider refuses to exchange an authorization code
	ErrExchangeFailed = errors.New("could not exchange authorization code")

	// ErrUserDetailsUnavailable is returned when the authenticated user profile cannot be retrieved
	ErrUserDetailsUnavailable = errors.New("could not fetch user details")
)
