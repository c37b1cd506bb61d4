package config

import "github.com/spf13/viper"

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_path", "")
	v.SetDefault("app.llm_log_path", "logs/llm.log")
	v.SetDefault("app.llm_dump", false)

	v.SetDefault("model.base_url", "http://localhost:11434/v1")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.model", "llama3")
	v.SetDefault("model.temperature", 0.2)
	v.SetDefault("model.timeout_seconds", 60)

	v.SetDefault("prompt.profile_path", "")

	v.SetDefault("log.enabled", true)
	v.SetDefault("log.path", "signals_log.csv")
}
