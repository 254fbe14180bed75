// README: Config loader; reads .env (optional) then environment with viper defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type LLMConfig struct {
	Provider  string
	Model     string
	Timeout   time.Duration
	GeminiKey string
	OpenAIKey string
	// OpenAIBaseURL overrides the chat completions host (OpenAI-compatible gateways).
	OpenAIBaseURL string
}

type MapsConfig struct {
	APIKey  string
	Timeout time.Duration
}

type Config struct {
	Env string
	Log struct {
		Level string
	}
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr is optional; intent stats are disabled when empty.
		Addr string
	}
	LLM  LLMConfig
	Maps MapsConfig
}

var ErrMissingCredential = errors.New("missing credential")

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()

	v.SetDefault("COMPASS_ENV", "development")
	v.SetDefault("COMPASS_LOG_LEVEL", "info")
	v.SetDefault("COMPASS_HTTP_ADDR", ":5000")
	v.SetDefault("COMPASS_REDIS_ADDR", "")
	v.SetDefault("COMPASS_LLM_PROVIDER", ProviderGemini)
	v.SetDefault("COMPASS_LLM_MODEL", "")
	v.SetDefault("COMPASS_LLM_TIMEOUT", 20*time.Second)
	v.SetDefault("COMPASS_MAPS_TIMEOUT", 10*time.Second)
	v.SetDefault("OPENAI_BASE_URL", "")

	var cfg Config
	cfg.Env = v.GetString("COMPASS_ENV")
	cfg.Log.Level = v.GetString("COMPASS_LOG_LEVEL")
	cfg.HTTP.Addr = v.GetString("COMPASS_HTTP_ADDR")
	cfg.Redis.Addr = v.GetString("COMPASS_REDIS_ADDR")

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("COMPASS_LLM_PROVIDER")))
	cfg.LLM.Model = v.GetString("COMPASS_LLM_MODEL")
	cfg.LLM.Timeout = v.GetDuration("COMPASS_LLM_TIMEOUT")
	cfg.LLM.GeminiKey = v.GetString("GEMINI_API_KEY")
	cfg.LLM.OpenAIKey = v.GetString("OPENAI_API_KEY")
	cfg.LLM.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")

	cfg.Maps.APIKey = v.GetString("GOOGLE_MAPS_API_KEY")
	cfg.Maps.Timeout = v.GetDuration("COMPASS_MAPS_TIMEOUT")

	switch cfg.LLM.Provider {
	case ProviderGemini:
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = "gemini-2.5-flash"
		}
		if cfg.LLM.GeminiKey == "" {
			return cfg, fmt.Errorf("%w: GEMINI_API_KEY is required", ErrMissingCredential)
		}
	case ProviderOpenAI:
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = "gpt-4o-mini"
		}
		if cfg.LLM.OpenAIKey == "" {
			return cfg, fmt.Errorf("%w: OPENAI_API_KEY is required", ErrMissingCredential)
		}
	default:
		return cfg, fmt.Errorf("unknown COMPASS_LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	if cfg.Maps.APIKey == "" {
		return cfg, fmt.Errorf("%w: GOOGLE_MAPS_API_KEY is required", ErrMissingCredential)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
