package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateText runs the ReAct loop: Reason → Act → Observe.
// It satisfies the planner's TextGenerator interface.
func (o *Orchestrator) GenerateText(ctx context.Context, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessage
	if o.systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: o.systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	tools := o.registry.ToFunctionDefinitions()

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, "%s: step %d/%d", LogPrefixGenerateText, step+1, MaxAgentSteps)

		// 1. Reason: ask the LLM what to do
		resp, err := o.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step, err)
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		msg := resp.Choices[0].Message

		// 2. No tool calls means the LLM has its final answer
		if len(msg.ToolCalls) == 0 {
			o.l.Infof(ctx, "%s: finished at step %d", LogPrefixGenerateText, step+1)
			return msg.Content, nil
		}

		// 3. Act: execute every requested tool, then observe
		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			result := o.executeToolCall(ctx, call)

			payload, merr := json.Marshal(result)
			if merr != nil {
				payload = []byte(`{"error":"tool result not serializable"}`)
			}

			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				ToolCallID: call.ID,
			})
		}
	}

	o.l.Warnf(ctx, "%s: exceeded max steps (%d)", LogPrefixGenerateText, MaxAgentSteps)
	return MsgMaxStepsExceeded, nil
}

// executeToolCall resolves and runs a single tool call. Failures become
// {"error": ...} results fed back to the model, never loop aborts.
func (o *Orchestrator) executeToolCall(ctx context.Context, call openai.ToolCall) interface{} {
	toolName := call.Function.Name
	o.l.Infof(ctx, "%s: calling tool %s with args %s", LogPrefixGenerateText, toolName, call.Function.Arguments)

	tool, ok := o.registry.Get(toolName)
	if !ok {
		o.l.Errorf(ctx, "%s: tool %s not found", LogPrefixGenerateText, toolName)
		return map[string]string{"error": MsgToolNotFound}
	}

	var args map[string]interface{}
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			o.l.Errorf(ctx, "%s: tool %s arguments unparseable: %v", LogPrefixGenerateText, toolName, err)
			return map[string]string{"error": MsgInvalidToolArgs}
		}
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		o.l.Errorf(ctx, "%s: tool %s failed: %v", LogPrefixGenerateText, toolName, err)
		return map[string]string{"error": err.Error()}
	}

	return result
}
