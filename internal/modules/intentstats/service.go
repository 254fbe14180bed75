package intentstats

import (
	"context"

	"compass/internal/ai"
)

// Service records classification outcomes. A nil *Service is valid and
// records nothing.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// LabelFor maps a classification outcome to its counter label. err is the
// classifier's error, if any.
func LabelFor(c ai.Classification, err error) string {
	switch {
	case err != nil:
		return LabelFailed
	case !c.Matched:
		return LabelUnmatched
	default:
		return string(c.Intent)
	}
}

// Record increments the counter for one classification outcome.
func (s *Service) Record(ctx context.Context, c ai.Classification, err error) error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Incr(ctx, LabelFor(c, err))
}

// Counts returns all counters, or ErrDisabled without a backend.
func (s *Service) Counts(ctx context.Context) (map[string]int64, error) {
	if s == nil || s.store == nil {
		return nil, ErrDisabled
	}
	return s.store.Counts(ctx)
}
