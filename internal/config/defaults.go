package config

const (
	defaultDataDir   = "~/.local/share/scriptforge"
	defaultOutputDir = "~/.local/share/scriptforge/outputs"
	defaultLogDir    = "~/.local/share/scriptforge/logs"

	defaultMinSceneChars = 300
	defaultMaxSceneChars = 3200

	defaultTopK = 3

	defaultMinChars = 1000
	defaultMaxChars = 1300

	defaultMinTokens = 1000
	defaultMaxTokens = 1200

	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "deepseek/deepseek-chat"
	defaultLLMTimeoutSeconds = 120

	defaultMaxRetries = 3

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Segmenter: Segmenter{
			MinSceneChars: defaultMinSceneChars,
			MaxSceneChars: defaultMaxSceneChars,
		},
		Retrieval: Retrieval{
			TopK: defaultTopK,
		},
		Validation: Validation{
			MinChars: defaultMinChars,
			MaxChars: defaultMaxChars,
		},
		Report: Report{
			MinTokens: defaultMinTokens,
			MaxTokens: defaultMaxTokens,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Workflow: Workflow{
			MaxRetries: defaultMaxRetries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
