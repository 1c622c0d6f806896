package dashboard

import (
	"context"
	"time"

	"github.com/bornholm/burnin/internal/http/handler/webui/common/form"
	"github.com/bornholm/burnin/internal/record"
	"github.com/invopop/ctxi18n/i18n"
)

const (
	fieldDeployedOn = "deployed_on"
	fieldDeployedAt = "deployed_at"
	fieldNetwork    = "network"
	fieldBranch     = "branch"
	fieldComment    = "comment"
)

const deployedAtLayout = "2006-01-02"

// NewManualForm returns the form used to register a manually managed
// deployment. The deployment date defaults to the current day of now.
func NewManualForm(ctx context.Context, now func() time.Time) *form.Form {
	fields := []form.Field{
		{
			Name:       fieldDeployedOn,
			Label:      i18n.T(ctx, "dashboard.manual.deployed_on"),
			Type:       form.TypeText,
			Validation: []form.ValidationRule{form.RequiredRule{}},
		},
		{
			Name:    fieldDeployedAt,
			Label:   i18n.T(ctx, "dashboard.manual.deployed_at"),
			Type:    form.TypeText,
			Default: func() string { return now().Format(deployedAtLayout) },
		},
		{
			Name:  fieldNetwork,
			Label: i18n.T(ctx, "dashboard.manual.network"),
			Type:  form.TypeText,
		},
		{
			Name:  fieldBranch,
			Label: i18n.T(ctx, "dashboard.manual.branch"),
			Type:  form.TypeText,
		},
		{
			Name:  fieldRequestedBy,
			Label: i18n.T(ctx, "dashboard.manual.requested_by"),
			Type:  form.TypeText,
		},
		{
			Name:        fieldComment,
			Label:       i18n.T(ctx, "dashboard.manual.comment"),
			Type:        form.TypeTextarea,
			Placeholder: i18n.T(ctx, "dashboard.manual.comment_placeholder"),
		},
	}

	return form.New(fields)
}

func manualRunFromForm(f *form.Form) record.ManualRun {
	return record.ManualRun{
		DeployedOn:  f.Value(fieldDeployedOn),
		DeployedAt:  f.Value(fieldDeployedAt),
		Network:     f.Value(fieldNetwork),
		Branch:      f.Value(fieldBranch),
		RequestedBy: f.Value(fieldRequestedBy),
		Comment:     f.Value(fieldComment),
	}
}
