// Package oauth implements the GitLab authorization code flow used to log
// users in: building the authorize URL, exchanging the returned code and
// fetching the profile of the authenticated user.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/burnin/internal/slogx"
	"github.com/markbates/goth/providers/gitlab"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client drives the authorization code flow through the goth gitlab
// provider. The profile is fetched here with a bearer token since the
// provider passes the token in the query string.
type Client struct {
	baseURL  *url.URL
	provider *gitlab.Provider
	http     *http.Client
	logger   *slog.Logger
}

// BuildLoginURL returns the provider authorization URL. The state parameter
// is omitted when empty.
func (c *Client) BuildLoginURL(state string) string {
	sess, err := c.provider.BeginAuth(state)
	if err != nil {
		c.logger.Error("could not begin authorization", slogx.Error(err))
		return ""
	}

	authURL, err := sess.GetAuthURL()
	if err != nil {
		c.logger.Error("could not build authorization url", slogx.Error(err))
		return ""
	}

	return authURL
}

// FetchAccessToken exchanges an authorization code for an access token.
func (c *Client) FetchAccessToken(ctx context.Context, code string) (string, error) {
	sess := &gitlab.Session{}

	accessToken, err := sess.Authorize(c.provider, url.Values{"code": {code}})
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			c.logger.ErrorContext(ctx, "token exchange refused",
				slog.Int("status", retrieveErr.Response.StatusCode),
				slog.String("body", string(retrieveErr.Body)),
			)
		} else {
			c.logger.ErrorContext(ctx, "token exchange failed", slogx.Error(err))
		}

		return "", errors.WithStack(ErrExchangeFailed)
	}

	if accessToken == "" {
		c.logger.ErrorContext(ctx, "token exchange returned an empty access token")
		return "", errors.WithStack(ErrExchangeFailed)
	}

	return accessToken, nil
}

// FetchUserDetails returns the name and email of the user owning the token.
func (c *Client) FetchUserDetails(ctx context.Context, accessToken string) (*UserDetails, error) {
	userURL := c.baseURL.JoinPath("/api/v4/user")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userURL.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "could not fetch user details", slog.String("url", userURL.String()), slogx.Error(err))
		return nil, errors.WithStack(ErrUserDetailsUnavailable)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		c.logger.ErrorContext(ctx, "user details request refused",
			slog.String("url", userURL.String()),
			slog.Int("status", res.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, errors.WithStack(ErrUserDetailsUnavailable)
	}

	var details UserDetails
	if err := json.NewDecoder(res.Body).Decode(&details); err != nil {
		c.logger.ErrorContext(ctx, "could not decode user details", slogx.Error(err))
		return nil, errors.WithStack(ErrUserDetailsUnavailable)
	}

	return &details, nil
}

func NewClient(baseURL string, funcs ...OptionFunc) (*Client, error) {
	opts := NewOptions(funcs...)

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid provider url: %s", baseURL)
	}

	provider := gitlab.NewCustomisedURL(
		opts.ClientID,
		opts.ClientSecret,
		opts.RedirectURL,
		parsed.JoinPath("/oauth/authorize").String(),
		parsed.JoinPath("/oauth/token").String(),
		parsed.JoinPath("/api/v4/user").String(),
		opts.Scopes...,
	)

	provider.HTTPClient = opts.HTTPClient

	return &Client{
		baseURL:  parsed,
		provider: provider,
		http:     opts.HTTPClient,
		logger:   opts.Logger.With("component", "oauth-client"),
	}, nil
}
