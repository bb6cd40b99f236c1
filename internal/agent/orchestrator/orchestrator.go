package orchestrator

import (
	"context"
	"fmt"

	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/pkg/llmprovider"
)

// Generate runs the ReAct loop: Reason → Act → Observe.
// history is the transcript before prompt, oldest first.
func (o *Orchestrator) Generate(ctx context.Context, prompt string, history []dialogue.Turn, systemPrompt string) (string, error) {
	req := o.buildRequest(prompt, history, systemPrompt)

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Debugf(ctx, "agent step %d/%d", step+1, MaxAgentSteps)

		// 1. Reason
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("agent LLM error at step %d: %w", step, err)
		}

		call := resp.Content.FirstCall()
		if call == nil {
			text := resp.Content.Text()
			if text == "" {
				return "", ErrEmptyResponse
			}
			o.l.Debugf(ctx, "agent finished at step %d", step+1)
			return text, nil
		}

		// 2. Act
		result := o.execute(ctx, call)

		// 3. Observe
		req.Messages = append(req.Messages,
			llmprovider.Message{
				Role:  llmprovider.RoleAssistant,
				Parts: []llmprovider.Part{{FunctionCall: call}},
			},
			llmprovider.Message{
				Role: llmprovider.RoleUser,
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{Name: call.Name, Response: result},
				}},
			},
		)
	}

	o.l.Warnf(ctx, "agent exceeded max steps (%d)", MaxAgentSteps)
	return "", ErrMaxStepsExceeded
}

func (o *Orchestrator) buildRequest(prompt string, history []dialogue.Turn, systemPrompt string) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleUser
		if turn.Role == dialogue.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.TextMessage(role, turn.Content))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, prompt))

	req := &llmprovider.Request{
		Messages:    messages,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}
	if o.registry.Len() > 0 {
		req.Tools = o.registry.ToFunctionDefinitions()
		systemPrompt += toolGuidance
	}
	if systemPrompt != "" {
		sys := llmprovider.TextMessage(llmprovider.RoleSystem, systemPrompt)
		req.SystemInstruction = &sys
	}
	return req
}

func (o *Orchestrator) execute(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, "agent calling tool: %s with args: %+v", call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, "tool %s not found", call.Name)
		return map[string]string{"error": "tool not found"}
	}
	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, "tool %s failed: %v", call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
