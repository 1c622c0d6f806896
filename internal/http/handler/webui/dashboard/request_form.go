package dashboard

import (
	"context"
	"strconv"

	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/bornholm/burnin/internal/record"
	"github.com/invopop/ctxi18n/i18n"
)

const (
	fieldPullRequest      = "pull_request"
	fieldCommitSHA        = "commit_sha"
	fieldCustomBinary     = "custom_binary"
	fieldCustomOptions    = "custom_options"
	fieldRequestedBy      = "requested_by"
	fieldSyncFromScratch  = "sync_from_scratch"
	fieldWestendNodes     = "westend_validators"
	fieldKusamaFullNode   = "kusama_fullnode"
	fieldPolkadotFullNode = "polkadot_fullnode"
)

// NewRequestForm returns the form used to request an automated run.
func NewRequestForm(ctx context.Context) *form.Form {
	fields := []form.Field{
		{
			Name:        fieldPullRequest,
			Label:       i18n.T(ctx, "dashboard.request.pull_request"),
			Type:        form.TypeText,
			Placeholder: i18n.T(ctx, "dashboard.request.pull_request_placeholder"),
		},
		{
			Name:        fieldCommitSHA,
			Label:       i18n.T(ctx, "dashboard.request.commit_sha"),
			Type:        form.TypeText,
			Placeholder: i18n.T(ctx, "dashboard.request.commit_sha_placeholder"),
		},
		{
			Name:        fieldCustomBinary,
			Label:       i18n.T(ctx, "dashboard.request.custom_binary"),
			Type:        form.TypeText,
			Placeholder: i18n.T(ctx, "dashboard.request.custom_binary_placeholder"),
		},
		{
			Name:        fieldCustomOptions,
			Label:       i18n.T(ctx, "dashboard.request.custom_options"),
			Type:        form.TypeTextarea,
			Placeholder: i18n.T(ctx, "dashboard.request.custom_options_placeholder"),
		},
		{
			Name:        fieldRequestedBy,
			Label:       i18n.T(ctx, "dashboard.request.requested_by"),
			Type:        form.TypeText,
			Placeholder: i18n.T(ctx, "dashboard.request.requested_by_placeholder"),
		},
		{
			Name:  fieldSyncFromScratch,
			Label: i18n.T(ctx, "dashboard.request.sync_from_scratch"),
			Type:  form.TypeCheckbox,
		},
		{
			Name:       fieldWestendNodes,
			Label:      i18n.T(ctx, "dashboard.request.westend_validators"),
			Type:       form.TypeNumber,
			Default:    func() string { return "0" },
			Attributes: map[string]any{"min": 0, "step": 1},
			Validation: []form.ValidationRule{
				form.NumberRangeRule{Min: form.IntPtr(0)},
			},
		},
		{
			Name:  fieldKusamaFullNode,
			Label: i18n.T(ctx, "dashboard.request.kusama_fullnode"),
			Type:  form.TypeCheckbox,
		},
		{
			Name:  fieldPolkadotFullNode,
			Label: i18n.T(ctx, "dashboard.request.polkadot_fullnode"),
			Type:  form.TypeCheckbox,
		},
	}

	return form.New(fields,
		form.WithRules(
			form.AnyOf("dashboard.request.missing_source", fieldPullRequest, fieldCustomBinary),
			form.AnyOf("dashboard.request.missing_network", fieldKusamaFullNode, fieldPolkadotFullNode, fieldWestendNodes),
		),
	)
}

// requestFromForm builds the record of a validated request form.
// requestedBy is used when the form leaves the field blank.
func requestFromForm(f *form.Form, requestedBy string) record.Request {
	westend, _ := strconv.Atoi(f.Value(fieldWestendNodes))

	req := record.Request{
		PullRequest:     f.Value(fieldPullRequest),
		CommitSHA:       f.Value(fieldCommitSHA),
		CustomBinary:    f.Value(fieldCustomBinary),
		CustomOptions:   f.Lines(fieldCustomOptions),
		RequestedBy:     f.Value(fieldRequestedBy),
		SyncFromScratch: f.Checked(fieldSyncFromScratch),
		Nodes:           record.NewNodes(f.Checked(fieldKusamaFullNode), f.Checked(fieldPolkadotFullNode), westend),
	}

	if req.RequestedBy == "" {
		req.RequestedBy = requestedBy
	}

	if len(req.CustomOptions) == 0 {
		req.CustomOptions = nil
	}

	return req
}
