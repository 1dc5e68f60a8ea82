package usecase

import (
	"globetrek/internal/conversation"
	"globetrek/internal/images"
	"globetrek/internal/planner"
	"globetrek/internal/render"
	pkgLog "globetrek/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	planAgent planner.TextGenerator
	chatAgent planner.TextGenerator
	extractor *images.Extractor
	renderer  *render.Renderer
	store     *conversation.Store
}

// New creates a new planner UseCase instance. planAgent and chatAgent may be
// nil when the LLM credential is missing; the corresponding operations then
// report the feature as unavailable.
func New(
	l pkgLog.Logger,
	planAgent planner.TextGenerator,
	chatAgent planner.TextGenerator,
	extractor *images.Extractor,
	renderer *render.Renderer,
	store *conversation.Store,
) *implUseCase {
	return &implUseCase{
		l:         l,
		planAgent: planAgent,
		chatAgent: chatAgent,
		extractor: extractor,
		renderer:  renderer,
		store:     store,
	}
}
