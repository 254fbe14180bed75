// README: Base handler utilities (JSON helpers, request logger lookup).
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"compass/internal/http/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// requestLogger returns the logger installed by middleware.Logging, or fallback.
func requestLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(middleware.ContextLoggerKey); ok {
		if log, ok := l.(*zap.Logger); ok {
			return log
		}
	}
	return fallback
}
