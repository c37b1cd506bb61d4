package provider

import (
	"fmt"
	"strings"
	"time"
)

// ModelCfg mirrors the model section of the config file, kept local so this
// package does not depend on internal/config.
type ModelCfg struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Headers     map[string]string
}

func BuildProviderFromConfig(cfg ModelCfg, timeout time.Duration) ModelProvider {
	model := strings.TrimSpace(cfg.Model)
	id := fmt.Sprintf("openai:%s", model)
	client := &OpenAIChatClient{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		Model:        model,
		Temperature:  cfg.Temperature,
		ExtraHeaders: cfg.Headers,
	}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return NewOpenAIModelProvider(id, client)
}
