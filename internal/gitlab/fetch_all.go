package gitlab

import (
	"context"
	"log/slog"

	"github.com/bornholm/burnin/internal/record"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FetchAll lists the record files under prefix and fetches them in
// parallel. Entries keep the listing order. A file that cannot be fetched
// or parsed is returned with its error set.
//
// The returned error reports a failed read of the repository: the listing
// itself or one of the files. Parse errors only show up on their entry.
func FetchAll[T any](ctx context.Context, client *Client, prefix string, parse record.ParseFunc[T]) ([]record.Entry[T], error) {
	paths, err := client.list(ctx, prefix)
	if err != nil {
		client.logger.ErrorContext(ctx, "could not list repository tree", slog.String("prefix", prefix), slogx.Error(err))
		return []record.Entry[T]{}, errors.WithStack(err)
	}

	entries := make([]record.Entry[T], len(paths))

	var group errgroup.Group
	group.SetLimit(client.concurrency)

	for i, p := range paths {
		group.Go(func() error {
			content, err := client.fetchFile(ctx, p)
			if err != nil {
				client.logger.ErrorContext(ctx, "could not fetch file", slogx.Path(p), slogx.Error(err))
				entries[i] = record.Entry[T]{Path: p, Err: err}
				return errors.Wrapf(err, "could not fetch '%s'", p)
			}

			entry := record.NewEntry(p, []byte(content), parse)
			if !entry.Valid() {
				client.logger.WarnContext(ctx, "could not parse record", slogx.Path(p), slogx.Error(entry.Err))
			}

			entries[i] = entry

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return entries, errors.WithStack(err)
	}

	return entries, nil
}
