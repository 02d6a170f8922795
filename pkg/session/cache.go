package session

import (
	"context"

	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// FetchFunc materializes a collection for a kind; typically a
// fetch.Fetcher's FetchAll.
type FetchFunc func(ctx context.Context, kind model.Kind) (model.Collection, error)

// Cache serves collections from a session-partitioned store and fills
// misses through a FetchFunc. Its lifetime is owned by whoever owns the
// session: construct it at session start, invalidate on logout.
type Cache struct {
	store  Store
	fetch  FetchFunc
	group  singleflight.Group
	logger zerolog.Logger
}

// NewCache creates a cache over the given store and fetch function.
func NewCache(store Store, fetch FetchFunc) *Cache {
	if store == nil {
		panic("store cannot be nil")
	}
	if fetch == nil {
		panic("fetch func cannot be nil")
	}
	return &Cache{
		store:  store,
		fetch:  fetch,
		logger: log.With().Str("component", "session-cache").Logger(),
	}
}

// FetchCached returns the cached collection for (kind, session) when one
// exists, otherwise fetches, stores on success, and returns the result.
// Concurrent misses for the same key are coalesced into a single fetch.
// Failed fetches are never written to the store.
func (c *Cache) FetchCached(ctx context.Context, kind model.Kind, session string) (model.Collection, error) {
	collection, ok, err := c.store.Get(ctx, session, kind)
	if err != nil {
		CacheErrors.WithLabelValues("get").Inc()
		c.logger.Warn().Err(err).Str("kind", kind.String()).Msg("Cache get error")
	} else if ok {
		CacheHits.WithLabelValues(c.storeName()).Inc()
		c.logger.Debug().
			Str("kind", kind.String()).
			Int("records", len(collection)).
			Msg("Cache hit")
		return collection, nil
	}

	CacheMisses.Inc()

	v, err, shared := c.group.Do(cacheKey(session, kind), func() (any, error) {
		fetched, err := c.fetch(ctx, kind)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(ctx, session, kind, fetched); err != nil {
			CacheErrors.WithLabelValues("set").Inc()
			c.logger.Warn().Err(err).Str("kind", kind.String()).Msg("Cache set error")
		}
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		c.logger.Debug().Str("kind", kind.String()).Msg("Coalesced into in-flight fetch")
	}

	return v.(model.Collection), nil
}

// InvalidateSession removes every cached collection for the session.
// Called once on logout; there is no per-kind invalidation.
func (c *Cache) InvalidateSession(ctx context.Context, session string) error {
	if err := c.store.DeleteSession(ctx, session); err != nil {
		CacheErrors.WithLabelValues("invalidate").Inc()
		return err
	}
	c.logger.Info().Msg("Session cache invalidated")
	return nil
}

func (c *Cache) storeName() string {
	if named, ok := c.store.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "store"
}

// cacheKey builds the coalescing key for one (session, kind) pair.
func cacheKey(session string, kind model.Kind) string {
	return session + ":" + kind.String()
}
