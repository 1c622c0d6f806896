package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/burnin/internal/gitlab"
	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/session"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

func (h *Handler) handleRequestSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	requestForm := NewRequestForm(ctx)

	if err := requestForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewBadRequestError(err, http.StatusText(http.StatusBadRequest)))
		return
	}

	commit := func(ctx context.Context) error {
		req := requestFromForm(requestForm, user.Email)

		data, err := req.Marshal()
		if err != nil {
			return errors.WithStack(err)
		}

		path := record.RequestPath(h.now())

		if err := h.committer.CreateFile(gitlab.WithToken(ctx, user.AccessToken), path, gitlab.RequestMessage(req.PullRequest), author(user), string(data)); err != nil {
			return errors.WithStack(err)
		}

		h.logger.InfoContext(ctx, "burn-in test requested", slogx.Path(path), slog.String("requested_by", req.RequestedBy))

		return nil
	}

	err := requestForm.Submit(ctx, commit, func() { h.restartPoller(ctx) })
	if err != nil {
		h.handleSubmissionError(w, r, err, "dashboard.request.failed", withRequestForm(requestForm))
		return
	}

	http.Redirect(w, r, h.indexURL(ctx), http.StatusSeeOther)
}

func (h *Handler) handleManualSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	manualForm := NewManualForm(ctx, h.now)

	if err := manualForm.Handle(r); err != nil {
		common.HandleError(w, r, common.NewBadRequestError(err, http.StatusText(http.StatusBadRequest)))
		return
	}

	commit := func(ctx context.Context) error {
		run := manualRunFromForm(manualForm)

		data, err := run.Marshal()
		if err != nil {
			return errors.WithStack(err)
		}

		path := record.ManualRunPath(h.now())

		if err := h.committer.CreateFile(gitlab.WithToken(ctx, user.AccessToken), path, gitlab.AddManualMessage(run.DeployedOn), author(user), string(data)); err != nil {
			return errors.WithStack(err)
		}

		h.logger.InfoContext(ctx, "manual deployment added", slogx.Path(path))

		return nil
	}

	err := manualForm.Submit(ctx, commit, func() { h.restartPoller(ctx) })
	if err != nil {
		h.handleSubmissionError(w, r, err, "dashboard.manual.failed", withManualForm(manualForm))
		return
	}

	http.Redirect(w, r, h.indexURL(ctx), http.StatusSeeOther)
}

// handleSubmissionError re-renders the dashboard with the submitted form.
// Validation errors are displayed by the form itself, commit failures
// with the alert of failedKey.
func (h *Handler) handleSubmissionError(w http.ResponseWriter, r *http.Request, err error, failedKey string, funcs ...indexPageFillerFunc) {
	ctx := r.Context()

	switch {
	case errors.Is(err, form.ErrInvalid):
		h.renderIndexPage(w, r, http.StatusUnprocessableEntity, funcs...)

	case errors.Is(err, form.ErrSubmitInFlight):
		h.renderIndexPage(w, r, http.StatusConflict, funcs...)

	case errors.Is(err, gitlab.ErrUnauthorized):
		h.expireSession(w, r)

	default:
		h.logger.ErrorContext(ctx, "could not commit record", slogx.Error(err))
		h.renderIndexPage(w, r, http.StatusBadGateway, append(funcs, withAlerts(i18n.T(ctx, failedKey)))...)
	}
}

// expireSession logs the user out when the repository rejects its token
// and asks for a new login.
func (h *Handler) expireSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.logger.WarnContext(ctx, "access token rejected, clearing session")

	if sess := httpCtx.Session(ctx); sess != nil {
		if err := session.Clear(sess); err != nil {
			h.logger.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		}

		if err := sess.AddFlash(i18n.T(ctx, "auth.expired")); err != nil {
			h.logger.ErrorContext(ctx, "could not add flash message", slogx.Error(err))
		}
	}

	h.restartPoller(ctx)

	http.Redirect(w, r, h.indexURL(ctx), http.StatusSeeOther)
}

func (h *Handler) restartPoller(ctx context.Context) {
	if err := h.poller.Start(); err != nil {
		h.logger.ErrorContext(ctx, "could not restart poller", slogx.Error(err))
	}
}

func (h *Handler) indexURL(ctx context.Context) string {
	return string(commonComp.BaseURL(ctx, commonComp.WithPath("/")))
}

func author(user *session.Session) gitlab.Author {
	return gitlab.Author{
		Name:  user.Name,
		Email: user.Email,
	}
}
