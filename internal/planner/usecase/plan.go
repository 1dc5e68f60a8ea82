package usecase

import (
	"context"
	"fmt"
	"strings"

	"globetrek/internal/conversation"
	"globetrek/internal/model"
	"globetrek/internal/planner"
)

// PlanTrip builds the itinerary prompt, runs the planning agent, strips
// inline images, and records the exchange in the plan history.
func (uc *implUseCase) PlanTrip(ctx context.Context, sc model.Scope, input planner.PlanTripInput) (planner.PlanTripOutput, error) {
	if uc.planAgent == nil {
		return planner.PlanTripOutput{}, planner.ErrPlannerUnavailable
	}
	if strings.TrimSpace(input.Destination) == "" {
		return planner.PlanTripOutput{}, planner.ErrMissingDestination
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return planner.PlanTripOutput{}, planner.ErrMissingDates
	}
	if input.Travelers <= 0 {
		input.Travelers = 1
	}

	prompt := buildPrompt(input)

	uc.l.Infof(ctx, "PlanTrip: session=%s destination=%s prompt_length=%d", sc.SessionID, input.Destination, len(prompt))

	raw, err := uc.planAgent.GenerateText(ctx, prompt)
	if err != nil {
		return planner.PlanTripOutput{}, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	itinerary, refs := uc.extractor.Extract(ctx, raw, input.Destination)

	uc.store.AppendExchange(sc.SessionID, conversation.KindPlan, prompt, itinerary)

	return planner.PlanTripOutput{
		Itinerary: itinerary,
		Images:    refs,
		Prompt:    prompt,
	}, nil
}
