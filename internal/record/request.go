package record

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	FullNode  = "fullnode"
	Sentry    = "sentry"
	Validator = "validator"
)

const (
	NetworkKusama   = "kusama"
	NetworkPolkadot = "polkadot"
	NetworkWestend  = "westend"
)

// Nodes maps a network to the requested count per node type,
// e.g. nodes["westend"]["validator"] = 2
type Nodes map[string]map[string]int

// NewNodes builds the node targets offered by the request form.
func NewNodes(kusamaFullNode bool, polkadotFullNode bool, westendValidators int) Nodes {
	nodes := Nodes{}

	if kusamaFullNode {
		nodes[NetworkKusama] = map[string]int{FullNode: 1}
	}

	if polkadotFullNode {
		nodes[NetworkPolkadot] = map[string]int{FullNode: 1}
	}

	if westendValidators > 0 {
		nodes[NetworkWestend] = map[string]int{Validator: westendValidators}
	}

	return nodes
}

// Request is an automated run request, fulfilled later by the
// deployment pipeline.
type Request struct {
	PullRequest     string   `toml:"pull_request"`
	CommitSHA       string   `toml:"commit_sha,omitempty"`
	CustomBinary    string   `toml:"custom_binary,omitempty"`
	CustomOptions   []string `toml:"custom_options,omitempty"`
	RequestedBy     string   `toml:"requested_by"`
	SyncFromScratch bool     `toml:"sync_from_scratch"`
	Nodes           Nodes    `toml:"nodes,omitempty"`
}

func (r Request) Marshal() ([]byte, error) {
	data, err := toml.Marshal(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func ParseRequest(data []byte) (Request, error) {
	var r Request
	if err := unmarshal(data, &r); err != nil {
		return Request{}, errors.WithStack(err)
	}

	return r, nil
}
