package querier

import (
	"context"
	"encoding/json"
	"time"

	"cwasset/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize used when the given size is not positive
const DefaultCacheSize = 1024

// Cache wrap a querier with an lru cache of responses; identical
// concurrent queries share one dispatch. exp <= 0 keeps entries until evicted.
func Cache(q core.Querier, size int, exp time.Duration) core.Querier {
	if size <= 0 {
		size = DefaultCacheSize
	}

	builder := gcache.New(size).LRU()
	if exp > 0 {
		builder = builder.Expiration(exp)
	}

	return &cacheQuerier{
		Querier: q,
		cache:   builder.Build(),
		sf:      &singleflight.Group{},
	}
}

type cacheQuerier struct {
	core.Querier
	cache gcache.Cache
	sf    *singleflight.Group
}

func (c *cacheQuerier) Query(ctx context.Context, req core.QueryRequest) ([]byte, error) {
	key, err := c.queryKey(req)
	if err != nil {
		return nil, err
	}

	if v, err := c.cache.Get(key); err == nil {
		if data, ok := v.([]byte); ok {
			return data, nil
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		data, err := c.Querier.Query(ctx, req)
		if err != nil {
			return nil, err
		}

		_ = c.cache.Set(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

func (c *cacheQuerier) queryKey(req core.QueryRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	return "query:" + string(b), nil
}
