package dashboard

import (
	"net/http"

	"github.com/bornholm/burnin/internal/gitlab"
	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/http/handler/webui/common"
	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadRequestError(err, http.StatusText(http.StatusBadRequest)))
		return
	}

	path := r.PostFormValue("path")
	deployedOn := r.PostFormValue("deployed_on")

	if !record.IsRemovable(path) {
		common.HandleError(w, r, common.NewBadRequestError(errors.New("invalid record path"), i18n.T(ctx, "dashboard.remove.invalid_path")))
		return
	}

	message := gitlab.RemoveMessage(record.IsManual(path), deployedOn)

	if err := h.committer.DeleteFile(gitlab.WithToken(ctx, user.AccessToken), path, message, author(user)); err != nil {
		if errors.Is(err, gitlab.ErrUnauthorized) {
			h.expireSession(w, r)
			return
		}

		h.logger.ErrorContext(ctx, "could not delete record", slogx.Path(path), slogx.Error(err))
		h.renderIndexPage(w, r, http.StatusBadGateway, withAlerts(i18n.T(ctx, "dashboard.remove.failed")))
		return
	}

	h.logger.InfoContext(ctx, "record deleted", slogx.Path(path))

	h.restartPoller(ctx)

	http.Redirect(w, r, h.indexURL(ctx), http.StatusSeeOther)
}
