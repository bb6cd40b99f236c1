package router

// Router classifies free text into intents and extracts names and slots.
type Router interface {
	Classify(text string) Intent
	ExtractName(text string) (string, bool)
	ExtractExplicitName(text string) (string, bool)
	ExtractSlots(text string) Slots
}

// KeywordRouter matches ordered keyword patterns. It is deterministic and safe
// for concurrent use.
type KeywordRouter struct{}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New() *KeywordRouter {
	return &KeywordRouter{}
}
