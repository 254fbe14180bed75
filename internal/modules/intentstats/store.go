package intentstats

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store handles intent counter persistence.
type Store struct {
	rdb *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Incr bumps the counter for label by one.
func (s *Store) Incr(ctx context.Context, label string) error {
	return s.rdb.HIncrBy(ctx, countsKey, label, 1).Err()
}

// Counts returns every label seen so far with its total.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, countsKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for label, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[label] = n
	}
	return out, nil
}
