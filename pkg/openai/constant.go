package openai

import "time"

// Provider names accepted by Config.Provider.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Per-provider endpoints and models used when Config leaves them empty.
var (
	defaultBaseURLs = map[string]string{
		ProviderOpenAI:   "https://api.openai.com/v1",
		ProviderDeepSeek: "https://api.deepseek.com/v1",
		ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	}
	defaultModels = map[string]string{
		ProviderOpenAI:   "gpt-4o-mini",
		ProviderDeepSeek: "deepseek-chat",
		ProviderQwen:     "qwen-plus",
	}
)
