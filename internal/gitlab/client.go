// Package gitlab reads and commits the record files of the deployments
// repository through the GitLab repository API.
package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

const treePageSize = 100

// Author identifies the user a commit is attributed to.
type Author struct {
	Name  string
	Email string
}

type treeEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

type commitRequest struct {
	Branch        string `json:"branch"`
	CommitMessage string `json:"commit_message"`
	AuthorName    string `json:"author_name"`
	AuthorEmail   string `json:"author_email"`
	Content       string `json:"content,omitempty"`
}

type Client struct {
	baseURL       *url.URL
	project       string
	branch        string
	readOnlyToken string
	concurrency   int
	http          *http.Client
	logger        *slog.Logger
}

// List returns the record files found directly under prefix, in the order
// returned by the API, as "prefix/name" paths. Failures are logged and
// yield an empty list.
func (c *Client) List(ctx context.Context, prefix string) []string {
	paths, err := c.list(ctx, prefix)
	if err != nil {
		c.logger.ErrorContext(ctx, "could not list repository tree", slog.String("prefix", prefix), slogx.Error(err))
		return []string{}
	}

	return paths
}

func (c *Client) list(ctx context.Context, prefix string) ([]string, error) {
	query := url.Values{}
	query.Set("ref", c.branch)
	query.Set("path", prefix)
	query.Set("per_page", strconv.Itoa(treePageSize))

	endpoint := c.repositoryURL("/tree") + "?" + query.Encode()

	res, err := c.do(ctx, http.MethodGet, "list", endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	var entries []treeEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "could not decode repository tree")
	}

	if len(entries) >= treePageSize {
		c.logger.WarnContext(ctx, "repository tree listing may be truncated", slog.String("prefix", prefix), slog.Int("entries", len(entries)))
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == "tree" || !record.IsRecordFile(e.Name) {
			continue
		}

		paths = append(paths, prefix+"/"+e.Name)
	}

	return paths, nil
}

// FetchFile returns the raw content of the file at path on the configured
// branch, or an empty string if it could not be retrieved.
func (c *Client) FetchFile(ctx context.Context, path string) string {
	content, err := c.fetchFile(ctx, path)
	if err != nil {
		c.logger.ErrorContext(ctx, "could not fetch file", slogx.Path(path), slogx.Error(err))
		return ""
	}

	return content
}

func (c *Client) fetchFile(ctx context.Context, path string) (string, error) {
	query := url.Values{}
	query.Set("ref", c.branch)

	endpoint := c.fileURL(path) + "/raw?" + query.Encode()

	res, err := c.do(ctx, http.MethodGet, "fetch", endpoint, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}

// CreateFile commits a new file with the given content on the configured
// branch.
func (c *Client) CreateFile(ctx context.Context, path string, message string, author Author, content string) error {
	body := commitRequest{
		Branch:        c.branch,
		CommitMessage: message,
		AuthorName:    author.Name,
		AuthorEmail:   author.Email,
		Content:       content,
	}

	if err := c.commit(ctx, http.MethodPost, "create", path, body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteFile commits the removal of the file at path.
func (c *Client) DeleteFile(ctx context.Context, path string, message string, author Author) error {
	body := commitRequest{
		Branch:        c.branch,
		CommitMessage: message,
		AuthorName:    author.Name,
		AuthorEmail:   author.Email,
	}

	if err := c.commit(ctx, http.MethodDelete, "delete", path, body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) commit(ctx context.Context, method string, operation string, path string, body commitRequest) error {
	if path == "" || strings.HasPrefix(path, "/") {
		return errors.Wrapf(ErrInvalidPath, "'%s'", path)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := c.do(ctx, method, operation, c.fileURL(path), payload)
	if err != nil {
		c.logger.ErrorContext(ctx, "commit failed",
			slog.String("operation", operation),
			slogx.Path(path),
			slogx.Error(err),
		)
		return errors.WithStack(fmt.Errorf("%w: %w", ErrCommitFailed, err))
	}

	defer res.Body.Close()

	c.logger.InfoContext(ctx, "file committed",
		slog.String("operation", operation),
		slogx.Path(path),
		slog.String("message", body.CommitMessage),
	)

	return nil
}

// do sends an authorized request and returns the response if its status is
// 2xx. The response body of a refused request is logged and closed.
func (c *Client) do(ctx context.Context, method string, operation string, endpoint string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	res, err := c.http.Do(req)

	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(method, operation, statusLabel(0)).Inc()
		return nil, errors.WithStack(err)
	}

	requestsTotal.WithLabelValues(method, operation, statusLabel(res.StatusCode)).Inc()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		defer res.Body.Close()

		data, _ := io.ReadAll(io.LimitReader(res.Body, 4096))

		c.logger.ErrorContext(ctx, "request refused",
			slog.String("method", method),
			slog.String("url", endpoint),
			slog.Int("status", res.StatusCode),
			slog.String("body", string(data)),
		)

		if res.StatusCode == http.StatusUnauthorized {
			return nil, errors.Wrapf(ErrUnauthorized, "%s %s", method, operation)
		}

		return nil, errors.Errorf("%s %s: unexpected status %d", method, operation, res.StatusCode)
	}

	return res, nil
}

func (c *Client) token(ctx context.Context) string {
	if token, ok := Token(ctx); ok {
		return token
	}

	return c.readOnlyToken
}

func (c *Client) repositoryURL(suffix string) string {
	return strings.TrimSuffix(c.baseURL.String(), "/") + "/api/v4/projects/" + url.PathEscape(c.project) + "/repository" + suffix
}

func (c *Client) fileURL(path string) string {
	return c.repositoryURL("/files/" + url.PathEscape(path))
}

func NewClient(baseURL string, funcs ...OptionFunc) (*Client, error) {
	opts := NewOptions(funcs...)

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid gitlab url: %s", baseURL)
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Client{
		baseURL:       parsed,
		project:       opts.Project,
		branch:        opts.Branch,
		readOnlyToken: opts.ReadOnlyToken,
		concurrency:   concurrency,
		http:          opts.HTTPClient,
		logger:        opts.Logger.With("component", "gitlab-client"),
	}, nil
}
