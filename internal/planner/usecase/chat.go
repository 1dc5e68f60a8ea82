package usecase

import (
	"context"
	"fmt"
	"strings"

	"globetrek/internal/conversation"
	"globetrek/internal/model"
	"globetrek/internal/planner"
)

// Chat runs a free-form message through the chat agent and records the
// exchange in the chat history.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input planner.ChatInput) (planner.ChatOutput, error) {
	if uc.chatAgent == nil {
		return planner.ChatOutput{}, planner.ErrChatUnavailable
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return planner.ChatOutput{}, planner.ErrEmptyMessage
	}

	reply, err := uc.chatAgent.GenerateText(ctx, message)
	if err != nil {
		return planner.ChatOutput{}, fmt.Errorf("failed to generate reply: %w", err)
	}

	uc.store.AppendExchange(sc.SessionID, conversation.KindChat, message, reply)

	return planner.ChatOutput{Reply: reply}, nil
}

// Plans returns the session's paired plan history.
func (uc *implUseCase) Plans(ctx context.Context, sc model.Scope) []conversation.Exchange {
	return uc.store.Exchanges(sc.SessionID, conversation.KindPlan)
}

// ChatHistory returns the session's paired chat history.
func (uc *implUseCase) ChatHistory(ctx context.Context, sc model.Scope) []conversation.Exchange {
	return uc.store.Exchanges(sc.SessionID, conversation.KindChat)
}
