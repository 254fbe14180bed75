// README: Shared wiring; builds the assistant and its backends from config.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"compass/internal/ai"
	"compass/internal/config"
	"compass/internal/infra"
	"compass/internal/maps"
	"compass/internal/modules/intentstats"
	"compass/internal/service"
)

// App holds the constructed services. Close releases every client it opened.
type App struct {
	Assistant *service.Assistant
	Stats     *intentstats.Service
	closers   []func() error
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

// NewLLM picks the provider named in cfg.
func NewLLM(ctx context.Context, cfg config.LLMConfig) (ai.LLMProvider, func() error, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case config.ProviderOpenAI:
		return ai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.Timeout), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// Build wires the assistant. Redis is optional: without an address, or when
// it cannot be reached, intent stats stay disabled.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{}

	llm, closeLLM, err := NewLLM(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm init: %w", err)
	}
	a.closers = append(a.closers, closeLLM)

	mapsClient, err := maps.NewClient(cfg.Maps.APIKey)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("maps init: %w", err)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Warn("intent stats disabled", zap.Error(err))
		} else {
			a.closers = append(a.closers, rdb.Close)
			a.Stats = intentstats.NewService(intentstats.NewStore(rdb))
		}
	}

	deps := service.AssistantDeps{
		LLM:        llm,
		Classifier: ai.NewClassifier(llm),
		Extractor:  ai.NewExtractor(llm),
		Places:     maps.NewPlacesService(mapsClient, cfg.Maps.Timeout),
		Routes:     maps.NewRouteService(mapsClient, cfg.Maps.Timeout),
		Geocoder:   maps.NewGeocodeService(mapsClient, cfg.Maps.Timeout),
		Logger:     log,
	}
	if a.Stats != nil {
		deps.Stats = a.Stats
	}
	a.Assistant = service.NewAssistant(deps)
	return a, nil
}
