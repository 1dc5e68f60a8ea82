package orchestrator

import (
	"globetrek/internal/agent"
	"globetrek/pkg/groq"
	pkgLog "globetrek/pkg/log"
)

// Orchestrator runs the agent loop: it forwards a prompt to the LLM, executes
// any tool calls the model requests, and feeds results back until the model
// produces a final text answer.
type Orchestrator struct {
	llm          groq.IGroq
	registry     *agent.ToolRegistry
	l            pkgLog.Logger
	systemPrompt string
}

// New creates an orchestrator. systemPrompt may be empty for a plain
// conversational agent.
func New(llm groq.IGroq, registry *agent.ToolRegistry, l pkgLog.Logger, systemPrompt string) *Orchestrator {
	if registry == nil {
		registry = agent.NewToolRegistry()
	}
	return &Orchestrator{
		llm:          llm,
		registry:     registry,
		l:            l,
		systemPrompt: systemPrompt,
	}
}
