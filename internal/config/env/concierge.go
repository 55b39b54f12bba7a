package env

import (
	"os"
	"royal_casino/internal/config"
	"strings"
	"time"
)

const (
	openAIKeyEnvName     = "OPENAI_API_KEY"
	openAIModelEnvName   = "OPENAI_MODEL"
	openAIBaseURLEnvName = "OPENAI_BASE_URL"

	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

type conciergeConfig struct {
	apiKey  string
	model   string
	baseURL string
}

func NewConciergeConfig() (config.ConciergeConfig, error) {
	cfg := &conciergeConfig{
		apiKey:  strings.TrimSpace(os.Getenv(openAIKeyEnvName)),
		model:   strings.TrimSpace(os.Getenv(openAIModelEnvName)),
		baseURL: strings.TrimSpace(os.Getenv(openAIBaseURLEnvName)),
	}
	if cfg.model == "" {
		cfg.model = defaultOpenAIModel
	}
	if cfg.baseURL == "" {
		cfg.baseURL = defaultOpenAIBaseURL
	}
	cfg.baseURL = strings.TrimRight(cfg.baseURL, "/")
	return cfg, nil
}

func (cfg *conciergeConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg *conciergeConfig) Model() string {
	return cfg.model
}

func (cfg *conciergeConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *conciergeConfig) Timeout() time.Duration {
	return 20 * time.Second
}
