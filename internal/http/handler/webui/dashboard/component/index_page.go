package component

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	common "github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/bornholm/burnin/internal/record"
	"github.com/invopop/ctxi18n/i18n"
)

type IndexPageVModel struct {
	Layout common.LayoutVModel

	// IsAdmin shows the manual deployment form
	IsAdmin bool

	RequestForm *form.Form
	ManualForm  *form.Form

	Runs       []record.Entry[record.Run]
	ManualRuns []record.Entry[record.ManualRun]

	GitHubRepository string
	UpdatedAt        time.Time
}

func IndexPage(vmodel IndexPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)

		h.Element("h2", i18n.T(ctx, "dashboard.title"))

		if vmodel.Layout.LoggedIn && vmodel.RequestForm != nil {
			h.Open("section", "id", "request").
				Element("h3", i18n.T(ctx, "dashboard.request.title")).
				Component(Form(FormVModel{
					ID:        "request-form",
					Action:    "/requests",
					Form:      vmodel.RequestForm,
					SubmitKey: "dashboard.request.submit",
				})).
				Close("section")
		}

		h.Open("section", "id", "automated").
			Element("h3", i18n.T(ctx, "dashboard.runs.title")).
			Component(RunsTable(RunsTableVModel{
				Runs:             vmodel.Runs,
				Removable:        vmodel.Layout.LoggedIn,
				GitHubRepository: vmodel.GitHubRepository,
			})).
			Element("p", i18n.T(ctx, "dashboard.updated_at", i18n.M{
				"date": common.FormatUTC(vmodel.UpdatedAt, i18n.T(ctx, "dashboard.runs.never_updated")),
			}), "class", "updated-at").
			Close("section")

		if vmodel.IsAdmin && vmodel.ManualForm != nil {
			h.Open("section", "id", "manual-request").
				Element("h3", i18n.T(ctx, "dashboard.manual.title")).
				Component(Form(FormVModel{
					ID:        "manual-form",
					Action:    "/manual",
					Form:      vmodel.ManualForm,
					SubmitKey: "dashboard.manual.submit",
				})).
				Close("section")
		}

		if len(vmodel.ManualRuns) > 0 {
			h.Open("section", "id", "manual").
				Element("h3", i18n.T(ctx, "dashboard.manual_runs.title")).
				Component(ManualRunsTable(ManualRunsTableVModel{
					Runs:      vmodel.ManualRuns,
					Removable: vmodel.Layout.LoggedIn,
				})).
				Close("section")
		}

		return h.Err()
	})

	return common.Layout(vmodel.Layout, body)
}
