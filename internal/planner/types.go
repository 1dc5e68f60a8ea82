package planner

import (
	"time"

	"globetrek/internal/images"
	"globetrek/internal/model"
)

// PlanTripInput is the planning form. It is read-only once submitted.
type PlanTripInput struct {
	OriginAirport string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Travelers     int
	Budget        model.BudgetTier
	Interests     []string
	Accommodation string
	Notes         string
}

// PlanTripOutput carries the generated itinerary with inline images split out.
type PlanTripOutput struct {
	Itinerary string
	Images    []images.Ref
	Prompt    string
}

// ChatInput is a free-form chat message.
type ChatInput struct {
	Message string
}

// ChatOutput is the chat agent's reply.
type ChatOutput struct {
	Reply string
}

// ExportInput selects what to render. Empty Markdown falls back to the
// session's latest plan itinerary.
type ExportInput struct {
	Markdown    string
	Destination string
	TravelDates string
}

// ExportOutput is a rendered PDF download.
type ExportOutput struct {
	Filename string
	Data     []byte
}
