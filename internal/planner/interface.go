package planner

import (
	"context"

	"globetrek/internal/conversation"
	"globetrek/internal/model"
)

// TextGenerator produces assistant text for a prompt. The agent orchestrator
// is the production implementation; tests substitute their own.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// PlanTrip builds the itinerary prompt, runs the planning agent, and
	// records the exchange in the session's plan history.
	PlanTrip(ctx context.Context, sc model.Scope, input PlanTripInput) (PlanTripOutput, error)

	// Chat runs a free-form message through the chat agent.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Plans returns the session's paired plan history.
	Plans(ctx context.Context, sc model.Scope) []conversation.Exchange

	// ChatHistory returns the session's paired chat history.
	ChatHistory(ctx context.Context, sc model.Scope) []conversation.Exchange

	// ExportPDF renders an itinerary to a downloadable PDF document.
	ExportPDF(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
