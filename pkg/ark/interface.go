package ark

import (
	"context"
	"fmt"

	arkModel "github.com/cloudwego/eino-ext/components/model/ark"
)

// IArk generates chat completions through Volcengine Ark.
// Implementations are safe for concurrent use.
type IArk interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New builds an eino Ark chat model from cfg.
func New(ctx context.Context, cfg Config) (IArk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chat, err := arkModel.NewChatModel(ctx, &arkModel.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		Region:  cfg.Region,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("ark: failed to create chat model: %w", err)
	}
	return NewWithGenerator(cfg.Model, chat), nil
}

// NewWithGenerator wraps an existing eino chat model.
func NewWithGenerator(modelName string, chat Generator) IArk {
	return &arkImpl{model: modelName, chat: chat}
}
