package intentstats

import "errors"

// ErrDisabled is returned by reads when no Redis backend is configured.
var ErrDisabled = errors.New("intent stats disabled")

// Labels recorded besides the four intent names.
const (
	LabelUnmatched = "general_unmatched"
	LabelFailed    = "classification_failed"
)

// countsKey is the Redis hash holding one field per label.
const countsKey = "compass:intent_counts"
