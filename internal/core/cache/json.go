package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// errAbsent aborts the load before anything is written to redis. An absent
// record must not be remembered for the object TTL: a delete followed by a
// re-read has to see storage, not a cached "not found".
var errAbsent = errors.New("cache: record absent")

// GetOrLoadJSON reads key as a JSON document, falling back to load on a
// miss. A (nil, nil) load result is passed through uncached.
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, errAbsent
		}
		return json.Marshal(v)
	})
	if errors.Is(err, errAbsent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
