package provider

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/refiscope/refiscope-backend/internal/adapter/cache"
	"github.com/refiscope/refiscope-backend/internal/domain"
)

// snapshotCacheKey versions the cached encoding; bump it when the snapshot
// shape changes.
const snapshotCacheKey = "market:snapshot:v1"

// CachedProvider memoizes another provider's snapshots in a Cache. Cache
// problems never fail a fetch: corrupt entries are discarded and failed
// stores are logged.
type CachedProvider struct {
	inner domain.MarketDataProvider
	cache cache.Cache
	log   *logrus.Logger
}

func NewCachedProvider(inner domain.MarketDataProvider, c cache.Cache, log *logrus.Logger) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: c,
		log:   log,
	}
}

func (p *CachedProvider) Snapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	if raw, ok := p.cache.Get(ctx, snapshotCacheKey); ok {
		var snapshot domain.MarketSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			p.log.Warnf("discarding corrupt cached snapshot: %v", err)
		} else {
			return &snapshot, nil
		}
	}

	snapshot, err := p.inner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		p.log.Warnf("failed to encode snapshot for cache: %v", err)
		return snapshot, nil
	}
	if err := p.cache.Set(ctx, snapshotCacheKey, string(raw)); err != nil {
		p.log.Warnf("failed to cache snapshot: %v", err)
	}

	return snapshot, nil
}
