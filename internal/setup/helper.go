package setup

import (
	"context"
	"sync"

	"github.com/bornholm/burnin/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the first successful result of factory.
// A failed creation is retried on the next call.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mu      sync.Mutex
		created bool
		service T
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mu.Lock()
		defer mu.Unlock()

		if created {
			return service, nil
		}

		srv, err := factory(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		service, created = srv, true

		return service, nil
	}
}
