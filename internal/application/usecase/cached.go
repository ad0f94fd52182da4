package usecase

import (
	"context"
	"net/url"

	"courseadmin/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

// cachedRead serves one read through the query cache. Cache failures are
// logged and fall through to fetch; only fetch errors reach the caller.
func cachedRead[V any](
	ctx context.Context,
	qc *cache.QueryCache,
	logger zerolog.Logger,
	resource string,
	params url.Values,
	fetch func() (V, error),
) (V, error) {
	if qc == nil {
		return fetch()
	}

	slot, err := qc.Slot(ctx, resource, params)
	if err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("Query cache unavailable")
		return fetch()
	}

	var cached V
	ok, err := qc.Get(ctx, slot, &cached)
	switch {
	case err != nil:
		logger.Warn().Err(err).Str("key", slot.Key).Msg("Query cache read failed")
	case ok:
		return cached, nil
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}
	if err := qc.Set(ctx, slot, value); err != nil {
		logger.Warn().Err(err).Str("key", slot.Key).Msg("Query cache write failed")
	}
	return value, nil
}

func invalidate(ctx context.Context, qc *cache.QueryCache, logger zerolog.Logger, resources ...string) {
	if qc == nil {
		return
	}
	if err := qc.Invalidate(ctx, resources...); err != nil {
		logger.Error().Err(err).Strs("resources", resources).Msg("Failed to invalidate query cache")
	}
}
