// Package dashboard serves the burn-in dashboard page and the forms
// committing records to the repository.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/burnin/internal/gitlab"
	"github.com/bornholm/burnin/internal/http/authz"
	"github.com/bornholm/burnin/internal/poll"
	"github.com/bornholm/burnin/internal/record"
)

// Committer writes records to the repository.
type Committer interface {
	CreateFile(ctx context.Context, path string, message string, author gitlab.Author, content string) error
	DeleteFile(ctx context.Context, path string, message string, author gitlab.Author) error
}

// Poller refreshes the collections shown on the dashboard.
type Poller interface {
	Start() error
	Status() poll.Status
}

// Collections gives access to the last fetched records.
type Collections interface {
	Runs() []record.Entry[record.Run]
	ManualRuns() []record.Entry[record.ManualRun]
	UpdatedAt() time.Time
}

type Handler struct {
	mux              *http.ServeMux
	committer        Committer
	poller           Poller
	collections      Collections
	admins           []string
	githubRepository string
	now              func() time.Time
	healthMaxAge     time.Duration
	logger           *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(committer Committer, poller Poller, collections Collections, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:              http.NewServeMux(),
		committer:        committer,
		poller:           poller,
		collections:      collections,
		admins:           opts.Admins,
		githubRepository: opts.GitHubRepository,
		now:              opts.Now,
		healthMaxAge:     opts.HealthMaxAge,
		logger:           opts.Logger.With("component", "dashboard-handler"),
	}

	assertUser := authz.Middleware(http.HandlerFunc(h.getForbiddenPage), authz.IsAuthenticated)
	assertAdmin := authz.Middleware(http.HandlerFunc(h.getForbiddenPage), authz.IsAdmin(opts.Admins))

	h.mux.Handle("GET /{$}", http.HandlerFunc(h.getIndexPage))
	h.mux.Handle("POST /requests", assertUser(http.HandlerFunc(h.handleRequestSubmission)))
	h.mux.Handle("POST /manual", assertUser(assertAdmin(http.HandlerFunc(h.handleManualSubmission))))
	h.mux.Handle("POST /runs/remove", assertUser(http.HandlerFunc(h.handleRemove)))
	h.mux.Handle("GET /health", http.HandlerFunc(h.getHealthCheck))

	return h
}

var _ http.Handler = &Handler{}
