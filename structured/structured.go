// Package structured extracts typed results from a chat model by forcing a
// single tool call and decoding its arguments.
package structured

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// PromptBuilder renders the typed input into the model conversation.
type PromptBuilder[TInput any] func(ctx context.Context, input TInput) ([]*schema.Message, error)

// Chain binds a prompt builder, a chat model and an output schema derived
// from TOutput's jsonschema tags. Invoke forces the model to call the tool
// and returns the decoded arguments.
type Chain[TInput, TOutput any] struct {
	buildPrompt PromptBuilder[TInput]
	chatModel   model.ToolCallingChatModel
	toolInfo    *schema.ToolInfo
}

func NewChain[TInput, TOutput any](
	chatModel model.ToolCallingChatModel,
	buildPrompt PromptBuilder[TInput],
	toolName, toolDesc string,
) (*Chain[TInput, TOutput], error) {
	toolInfo, err := utils.GoStruct2ToolInfo[TOutput](toolName, toolDesc)
	if err != nil {
		return nil, fmt.Errorf("build tool info for %s: %w", toolName, err)
	}
	return &Chain[TInput, TOutput]{
		buildPrompt: buildPrompt,
		chatModel:   chatModel,
		toolInfo:    toolInfo,
	}, nil
}

func (c *Chain[TInput, TOutput]) Invoke(ctx context.Context, input TInput) (*TOutput, error) {
	messages, err := c.buildPrompt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	response, err := c.chatModel.Generate(ctx, messages,
		model.WithTools([]*schema.ToolInfo{c.toolInfo}),
		model.WithToolChoice(schema.ToolChoiceForced, c.toolInfo.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("call model: %w", err)
	}
	if len(response.ToolCalls) == 0 {
		return nil, fmt.Errorf("no tool call in model response: %s", response.Content)
	}
	var result TOutput
	if err := sonic.UnmarshalString(response.ToolCalls[0].Function.Arguments, &result); err != nil {
		return nil, fmt.Errorf("decode tool arguments: %w", err)
	}
	return &result, nil
}
