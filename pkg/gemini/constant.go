package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-goog-api-key"
	maxErrorBody = 4 << 10
)

// Gemini calls the assistant "model"; callers may use either name.
const (
	roleUser      = "user"
	roleModel     = "model"
	roleAssistant = "assistant"
)

// blockedFinish lists candidate finish reasons that carry no usable answer.
var blockedFinish = map[string]bool{
	"SAFETY":             true,
	"PROHIBITED_CONTENT": true,
	"BLOCKLIST":          true,
	"SPII":               true,
}
