package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoResults is returned when a lookup succeeds but matches nothing.
var ErrNoResults = errors.New("No results")

// StatusError carries a non-OK status reported by the Maps web service.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return e.Status
}

// NewClient creates the shared Maps web-service client. Extra options are
// appended after the API key (tests use maps.WithBaseURL).
func NewClient(apiKey string, opts ...maps.ClientOption) (*maps.Client, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}

// withTimeout bounds one outbound call. A zero timeout leaves ctx untouched.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// classifyError turns the client library's "maps: STATUS - message" errors
// into *StatusError and wraps everything else.
func classifyError(op string, err error) error {
	if status, ok := statusFromError(err); ok {
		return &StatusError{Status: status}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func statusFromError(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "maps: ")
	if !ok {
		return "", false
	}
	status, _, ok := strings.Cut(rest, " - ")
	if !ok || status == "" {
		return "", false
	}
	for _, r := range status {
		if r != '_' && (r < 'A' || r > 'Z') {
			return "", false
		}
	}
	return status, true
}
