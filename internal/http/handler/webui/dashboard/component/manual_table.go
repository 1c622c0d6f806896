package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	common "github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/record"
	"github.com/invopop/ctxi18n/i18n"
)

type ManualRunsTableVModel struct {
	Runs      []record.Entry[record.ManualRun]
	Removable bool
}

func ManualRunsTable(vmodel ManualRunsTableVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)

		headers := []string{
			"dashboard.manual_runs.deployed_on",
			"dashboard.manual_runs.deployed_at",
			"dashboard.manual_runs.network",
			"dashboard.manual_runs.branch",
			"dashboard.manual_runs.requested_by",
			"dashboard.manual_runs.comment",
		}

		if vmodel.Removable {
			headers = append(headers, "dashboard.runs.remove")
		}

		h.Open("table", "id", "manual-runs").Open("thead").Open("tr")
		for _, key := range headers {
			h.Element("th", i18n.T(ctx, key))
		}
		h.Close("tr").Close("thead").Open("tbody")

		invalid := 0

		for index, entry := range vmodel.Runs {
			if !entry.Valid() {
				invalid++
				continue
			}

			run := entry.Content

			h.Open("tr", "class", RowClass(index)).
				Element("td", run.DeployedOn).
				Element("td", run.DeployedAt, "class", "centered").
				Element("td", run.Network, "class", "centered").
				Element("td", run.Branch, "class", "centered").
				Element("td", run.RequestedBy, "class", "centered").
				Open("td", "class", "comment").Component(Markdown(run.Comment)).Close("td")

			if vmodel.Removable {
				h.Open("td", "class", "centered").Component(RemoveButton(entry.Path, run.DeployedOn)).Close("td")
			}

			h.Close("tr")
		}

		h.Close("tbody").Close("table")

		if invalid > 0 {
			h.Element("p", i18n.T(ctx, "dashboard.invalid_records", i18n.M{"count": invalid}), "class", "notice")
		}

		return h.Err()
	})
}
