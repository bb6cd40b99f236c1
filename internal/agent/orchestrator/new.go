package orchestrator

import (
	"context"

	"github.com/belenfg/restaurant-chatbot/internal/agent"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/pkg/llmprovider"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
)

// LLM is the slice of llmprovider.Manager the orchestrator calls.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Orchestrator struct {
	llm         LLM
	registry    *agent.ToolRegistry
	l           pkgLog.Logger
	temperature float64
	maxTokens   int
}

var _ dialogue.Responder = (*Orchestrator)(nil)

// New builds a responder over llm. registry may be nil for plain text replies.
func New(llm LLM, registry *agent.ToolRegistry, l pkgLog.Logger) *Orchestrator {
	if registry == nil {
		registry = agent.NewToolRegistry()
	}
	return &Orchestrator{
		llm:         llm,
		registry:    registry,
		l:           l,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
}
