package googleai

const (
	// DefaultModel is the default model for both backends
	DefaultModel = "gemini-2.5-flash"

	// DefaultLocation is the default Vertex AI region
	DefaultLocation = "us-central1"
)

// Backend names accepted by Config.Backend.
const (
	BackendGoogleAI = "googleai"
	BackendVertex   = "vertex"
)
