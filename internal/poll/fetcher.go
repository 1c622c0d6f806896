package poll

import (
	"context"

	"github.com/bornholm/burnin/internal/gitlab"
	"github.com/bornholm/burnin/internal/record"
)

// Fetcher reads a collection. The entries are always usable, the error
// tells whether the repository could be read in full.
type Fetcher interface {
	FetchRuns(ctx context.Context) ([]record.Entry[record.Run], error)
	FetchManualRuns(ctx context.Context) ([]record.Entry[record.ManualRun], error)
}

// RepositoryFetcher reads both collections from the deployments repository.
type RepositoryFetcher struct {
	client *gitlab.Client
}

// FetchManualRuns implements Fetcher.
func (f *RepositoryFetcher) FetchManualRuns(ctx context.Context) ([]record.Entry[record.ManualRun], error) {
	return gitlab.FetchAll(ctx, f.client, record.ManualPrefix, record.ParseManualRun)
}

// FetchRuns implements Fetcher.
func (f *RepositoryFetcher) FetchRuns(ctx context.Context) ([]record.Entry[record.Run], error) {
	return gitlab.FetchAll(ctx, f.client, record.RunsPrefix, record.ParseRun)
}

func NewRepositoryFetcher(client *gitlab.Client) *RepositoryFetcher {
	return &RepositoryFetcher{client: client}
}

var _ Fetcher = &RepositoryFetcher{}
