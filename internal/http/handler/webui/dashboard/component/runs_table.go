package component

import (
	"context"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/a-h/templ"
	common "github.com/bornholm/burnin/internal/http/handler/webui/common/component"
	"github.com/bornholm/burnin/internal/record"
	"github.com/invopop/ctxi18n/i18n"
)

type RunsTableVModel struct {
	Runs []record.Entry[record.Run]
	// Removable adds the remove column
	Removable        bool
	GitHubRepository string
}

func RunsTable(vmodel RunsTableVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)

		headers := []string{
			"dashboard.runs.deployed_on",
			"dashboard.runs.network",
			"dashboard.runs.pull_request",
			"dashboard.runs.commit_sha",
			"dashboard.runs.requested_by",
			"dashboard.runs.deployed_at",
			"dashboard.runs.updated_at",
			"dashboard.runs.sync_from_scratch",
			"dashboard.runs.custom_options",
			"dashboard.runs.links",
		}

		if vmodel.Removable {
			headers = append(headers, "dashboard.runs.remove")
		}

		h.Open("table", "id", "runs").Open("thead").Open("tr")
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

			if entry.Content.PullRequest == "" {
				continue
			}

			h.Component(runRow(vmodel, index, entry))
		}

		h.Close("tbody").Close("table")

		if invalid > 0 {
			h.Element("p", i18n.T(ctx, "dashboard.invalid_records", i18n.M{"count": invalid}), "class", "notice")
		}

		return h.Err()
	})
}

func runRow(vmodel RunsTableVModel, index int, entry record.Entry[record.Run]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)
		run := entry.Content

		h.Open("tr", "class", RowClass(index))

		h.Open("td")
		if run.DeployedOn != "" {
			h.Element("code", run.DeployedOn)
		} else {
			h.Text(i18n.T(ctx, "dashboard.runs.pending"))
		}
		h.Close("td")

		h.Element("td", run.Network)

		h.Open("td")
		if label, ok := ShortPullRequest(vmodel.GitHubRepository, run.PullRequest); ok {
			h.Link(run.PullRequest, label)
		} else {
			h.Text(run.PullRequest)
		}
		h.Close("td")

		h.Open("td", "class", "centered")
		if run.CommitSHA != "" {
			h.Open("code").Link(CommitURL(vmodel.GitHubRepository, run.CommitSHA), ShortSHA(run.CommitSHA)).Close("code")
		}
		h.Close("td")

		h.Element("td", run.RequestedBy, "class", "centered")
		h.Element("td", common.FormatUTC(run.DeployedAt, i18n.T(ctx, "dashboard.runs.pending")), "class", "centered")
		h.Element("td", common.FormatUTC(run.UpdatedAt, i18n.T(ctx, "dashboard.runs.never_updated")), "class", "centered")
		h.Element("td", strconv.FormatBool(run.SyncFromScratch), "class", "centered")

		h.Open("td").Open("ul")
		for _, opt := range run.CustomOptions {
			h.Open("li").Element("code", opt).Close("li")
		}
		h.Close("ul").Close("td")

		h.Open("td").Open("ul")
		if run.LogViewer != "" {
			h.Open("li").Link(run.LogViewer, i18n.T(ctx, "dashboard.runs.logs")).Close("li")
		}
		for _, name := range slices.Sorted(maps.Keys(run.Dashboards)) {
			label := i18n.T(ctx, "dashboard.runs.dashboard", i18n.M{"name": DashboardLabel(name)})
			h.Open("li").Link(run.Dashboards[name], label).Close("li")
		}
		if run.CustomBinary != "" {
			h.Open("li").Link(run.CustomBinary, i18n.T(ctx, "dashboard.runs.client_binary")).Close("li")
		}
		h.Close("ul").Close("td")

		if vmodel.Removable {
			h.Open("td", "class", "centered").Component(RemoveButton(entry.Path, run.DeployedOn)).Close("td")
		}

		h.Close("tr")

		return h.Err()
	})
}

// RemoveButton renders the form deleting the record at path.
func RemoveButton(path string, deployedOn string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := common.NewHTML(ctx, w)

		confirm := "return confirm(" + strconv.Quote(i18n.T(ctx, "dashboard.runs.confirm_remove")) + ")"

		h.Open("form", "method", "post", "action", string(common.BaseURL(ctx, common.WithPath("/runs/remove"))), "class", "inline", "onsubmit", confirm).
			Open("input", "type", "hidden", "name", "path", "value", path).
			Open("input", "type", "hidden", "name", "deployed_on", "value", deployedOn).
			Open("button", "type", "submit", "class", "remove-button", "title", i18n.T(ctx, "dashboard.runs.remove")).
			Text("X").
			Close("button").
			Close("form")

		return h.Err()
	})
}
