package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"globetrek/internal/conversation"
	"globetrek/internal/model"
	"globetrek/internal/planner"
	"globetrek/internal/render"
)

// ExportPDF renders an itinerary to a PDF download. With no markdown in the
// request it falls back to the session's latest plan itinerary.
func (uc *implUseCase) ExportPDF(ctx context.Context, sc model.Scope, input planner.ExportInput) (planner.ExportOutput, error) {
	markdown := input.Markdown
	if strings.TrimSpace(markdown) == "" {
		latest, ok := uc.store.LatestAnswer(sc.SessionID, conversation.KindPlan)
		if !ok {
			return planner.ExportOutput{}, planner.ErrNoPlanToExport
		}
		markdown = latest
	}

	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		destination = "Trip"
	}

	uc.l.Infof(ctx, "ExportPDF: session=%s destination=%s markdown_length=%d", sc.SessionID, destination, len(markdown))

	data, err := uc.renderer.Render(ctx, render.Input{
		Markdown:    markdown,
		Destination: destination,
		DateRange:   input.TravelDates,
	})
	if err != nil {
		return planner.ExportOutput{}, fmt.Errorf("failed to render itinerary: %w", err)
	}

	return planner.ExportOutput{
		Filename: exportFilename(destination, time.Now()),
		Data:     data,
	}, nil
}

func exportFilename(destination string, now time.Time) string {
	sanitized := strings.ReplaceAll(destination, " ", "_")
	return fmt.Sprintf("%s_itinerary_%s.pdf", sanitized, now.Format("2006-01-02"))
}
