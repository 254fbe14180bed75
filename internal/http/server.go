// README: API gateway; registers HTTP routes and delegates to the assistant and stats services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"compass/internal/http/handlers"
	"compass/internal/http/middleware"
)

type ServerDeps struct {
	Assistant handlers.Assistant
	Stats     handlers.IntentCounter
	Logger    *zap.Logger
}

type Server struct {
	assistant *handlers.AssistantHandler
	stats     *handlers.StatsHandler
	log       *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		assistant: handlers.NewAssistantHandler(deps.Assistant, log),
		stats:     handlers.NewStatsHandler(deps.Stats, log),
		log:       log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", s.assistant.Index)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.POST("/ai_assistant", s.assistant.Ask)
	r.GET("/api/stats/intents", s.stats.Intents)
	return r
}
