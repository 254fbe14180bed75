// README: Intent stats handler; exposes classification counters.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"compass/internal/modules/intentstats"
)

type IntentCounter interface {
	Counts(ctx context.Context) (map[string]int64, error)
}

type StatsHandler struct {
	stats IntentCounter
	log   *zap.Logger
}

func NewStatsHandler(stats IntentCounter, log *zap.Logger) *StatsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsHandler{stats: stats, log: log}
}

// Intents handles GET /api/stats/intents.
func (h *StatsHandler) Intents(c *gin.Context) {
	counts, err := h.stats.Counts(c.Request.Context())
	if err != nil {
		if errors.Is(err, intentstats.ErrDisabled) {
			writeError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		requestLogger(c, h.log).Error("read intent stats", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"counts": counts})
}
