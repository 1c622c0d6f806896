package dashboard

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/http/handler/webui/common"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/bornholm/burnin/internal/http/handler/webui/dashboard/component"
	"github.com/bornholm/burnin/internal/session"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	h.renderIndexPage(w, r, http.StatusOK)
}

// renderIndexPage renders the dashboard. The given forms replace the
// blank ones, keeping submitted values and errors, and alerts are shown
// after the pending flash messages.
func (h *Handler) renderIndexPage(w http.ResponseWriter, r *http.Request, statusCode int, funcs ...indexPageFillerFunc) {
	ctx := r.Context()

	vmodel := &component.IndexPageVModel{}

	fillers := []indexPageFillerFunc{
		h.fillIndexPageLayoutVModel,
		h.fillIndexPageFormsVModel,
		h.fillIndexPageCollectionsVModel,
	}

	if err := common.FillViewModel(ctx, vmodel, r, append(fillers, funcs...)...); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	page := component.IndexPage(*vmodel)
	templ.Handler(page, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}

type indexPageFillerFunc = common.ViewModelFillerFunc[component.IndexPageVModel]

func (h *Handler) fillIndexPageLayoutVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	user := httpCtx.User(ctx)

	if user != nil {
		vmodel.Layout.LoggedIn = true
		vmodel.Layout.UserName = user.Name
	}

	sess := httpCtx.Session(ctx)
	if sess == nil {
		return nil
	}

	vmodel.IsAdmin = session.IsAdmin(sess, h.admins)

	flashes, err := sess.Flashes()
	if err != nil {
		h.logger.WarnContext(ctx, "could not read flash messages", slogx.Error(err))
		return nil
	}

	vmodel.Layout.Alerts = append(vmodel.Layout.Alerts, flashes...)

	return nil
}

func (h *Handler) fillIndexPageFormsVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	if vmodel.Layout.LoggedIn {
		vmodel.RequestForm = NewRequestForm(ctx)
	}

	if vmodel.IsAdmin {
		vmodel.ManualForm = NewManualForm(ctx, h.now)
	}

	return nil
}

func (h *Handler) fillIndexPageCollectionsVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	vmodel.Runs = h.collections.Runs()
	vmodel.ManualRuns = h.collections.ManualRuns()
	vmodel.UpdatedAt = h.collections.UpdatedAt()
	vmodel.GitHubRepository = h.githubRepository

	return nil
}

func withRequestForm(f *form.Form) indexPageFillerFunc {
	return func(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
		vmodel.RequestForm = f
		return nil
	}
}

func withManualForm(f *form.Form) indexPageFillerFunc {
	return func(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
		vmodel.ManualForm = f
		return nil
	}
}

func withAlerts(alerts ...string) indexPageFillerFunc {
	return func(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
		vmodel.Layout.Alerts = append(vmodel.Layout.Alerts, alerts...)
		return nil
	}
}
