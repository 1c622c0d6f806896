package record

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ManualRun is a deployment performed out-of-band and logged by an admin.
type ManualRun struct {
	DeployedOn  string `toml:"deployed_on"`
	DeployedAt  string `toml:"deployed_at"`
	Network     string `toml:"network"`
	Branch      string `toml:"branch"`
	RequestedBy string `toml:"requested_by"`
	Comment     string `toml:"comment"`
}

func (m ManualRun) Marshal() ([]byte, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func ParseManualRun(data []byte) (ManualRun, error) {
	var m ManualRun
	if err := unmarshal(data, &m); err != nil {
		return ManualRun{}, errors.WithStack(err)
	}

	return m, nil
}
