package record

import (
	"time"

	"github.com/pkg/errors"
)

// Run is an automated deployment as annotated by the pipeline.
type Run struct {
	PullRequest     string            `toml:"pull_request"`
	CommitSHA       string            `toml:"commit_sha"`
	CustomBinary    string            `toml:"custom_binary"`
	CustomOptions   []string          `toml:"custom_options"`
	RequestedBy     string            `toml:"requested_by"`
	SyncFromScratch bool              `toml:"sync_from_scratch"`
	Network         string            `toml:"network"`
	NodeType        string            `toml:"node_type"`
	DeployedAt      time.Time         `toml:"deployed_at"`
	UpdatedAt       time.Time         `toml:"updated_at"`
	DeployedOn      string            `toml:"deployed_on"`
	PublicFQDN      string            `toml:"public_fqdn"`
	InternalFQDN    string            `toml:"internal_fqdn"`
	LogViewer       string            `toml:"log_viewer"`
	Dashboards      map[string]string `toml:"dashboards"`
}

func ParseRun(data []byte) (Run, error) {
	var r Run
	if err := unmarshal(data, &r); err != nil {
		return Run{}, errors.WithStack(err)
	}

	return r, nil
}
