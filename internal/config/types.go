package config

// Config is the top-level configuration carrier.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Model  ModelConfig  `mapstructure:"model"`
	Prompt PromptConfig `mapstructure:"prompt"`
	Log    LogConfig    `mapstructure:"log"`
}

type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
	LLMLog   string `mapstructure:"llm_log_path"`
	LLMDump  bool   `mapstructure:"llm_dump"`
}

// ModelConfig describes the single chat backend used for every headline.
type ModelConfig struct {
	BaseURL        string            `mapstructure:"base_url"`
	APIKey         string            `mapstructure:"api_key"`
	Model          string            `mapstructure:"model"`
	Temperature    float64           `mapstructure:"temperature"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds"`
	Headers        map[string]string `mapstructure:"headers"`
}

type PromptConfig struct {
	ProfilePath string `mapstructure:"profile_path"`
}

// LogConfig controls the append-only signal log.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
