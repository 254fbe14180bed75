// README: Assistant handler; one query in, one response envelope out.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"compass/internal/service"
)

// Assistant is the dispatcher behind POST /ai_assistant.
type Assistant interface {
	Handle(ctx context.Context, q service.Query) (*service.Envelope, error)
}

type AssistantHandler struct {
	assistant Assistant
	log       *zap.Logger
}

func NewAssistantHandler(assistant Assistant, log *zap.Logger) *AssistantHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistantHandler{assistant: assistant, log: log}
}

type assistantReq struct {
	Query       *string `json:"query"`
	Location    string  `json:"location"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
}

// Ask handles POST /ai_assistant.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req assistantReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == nil {
		writeError(c, http.StatusBadRequest, service.ErrMissingQuery.Error())
		return
	}

	env, err := h.assistant.Handle(c.Request.Context(), service.Query{
		Text:        *req.Query,
		Location:    req.Location,
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingQuery) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		requestLogger(c, h.log).Error("assistant failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, env)
}

// Index handles GET / with a short usage description.
func (h *AssistantHandler) Index(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Google Maps AI Assistant running!",
		"usage": gin.H{
			"POST /ai_assistant": gin.H{
				"query":       "Find restaurants near Kochi",
				"location":    "9.9312,76.2673",
				"origin":      "Kochi",
				"destination": "Trivandrum",
			},
		},
	})
}
