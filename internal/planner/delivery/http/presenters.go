package http

import (
	"fmt"
	"time"

	"globetrek/internal/conversation"
	"globetrek/internal/images"
	"globetrek/internal/model"
	"globetrek/internal/planner"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type planTripReq struct {
	OriginAirport string   `json:"origin_airport" binding:"omitempty,max=8"`
	Destination   string   `json:"destination"    binding:"required,min=1,max=255"`
	StartDate     string   `json:"start_date"     binding:"required"`
	EndDate       string   `json:"end_date"       binding:"required"`
	Travelers     int      `json:"travelers"      binding:"omitempty,min=1,max=50"`
	Budget        string   `json:"budget"         binding:"omitempty,oneof=budget mid luxury"`
	Interests     []string `json:"interests"      binding:"omitempty,max=20"`
	Accommodation string   `json:"accommodation"  binding:"omitempty,max=100"`
	Notes         string   `json:"notes"          binding:"omitempty,max=2000"`
}

func (r planTripReq) validate() error {
	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		return fmt.Errorf("start_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(dateLayout, r.EndDate); err != nil {
		return fmt.Errorf("end_date must be YYYY-MM-DD")
	}
	return nil
}

func (r planTripReq) toInput() planner.PlanTripInput {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)

	return planner.PlanTripInput{
		OriginAirport: r.OriginAirport,
		Destination:   r.Destination,
		StartDate:     start,
		EndDate:       end,
		Travelers:     r.Travelers,
		Budget:        model.BudgetTier(r.Budget),
		Interests:     r.Interests,
		Accommodation: r.Accommodation,
		Notes:         r.Notes,
	}
}

// ---

type chatReq struct {
	Message string `json:"message" binding:"required,min=1,max=4000"`
}

func (r chatReq) toInput() planner.ChatInput {
	return planner.ChatInput{Message: r.Message}
}

// ---

type exportReq struct {
	Markdown    string `json:"markdown"     binding:"omitempty"`
	Destination string `json:"destination"  binding:"omitempty,max=255"`
	TravelDates string `json:"travel_dates" binding:"omitempty,max=100"`
}

func (r exportReq) toInput() planner.ExportInput {
	return planner.ExportInput{
		Markdown:    r.Markdown,
		Destination: r.Destination,
		TravelDates: r.TravelDates,
	}
}

// --- Response DTOs ---

type imageResp struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type planTripResp struct {
	Itinerary string      `json:"itinerary"`
	Images    []imageResp `json:"images"`
	Prompt    string      `json:"prompt"`
}

func newPlanTripResp(out planner.PlanTripOutput) planTripResp {
	return planTripResp{
		Itinerary: out.Itinerary,
		Images:    newImageResps(out.Images),
		Prompt:    out.Prompt,
	}
}

func newImageResps(refs []images.Ref) []imageResp {
	out := make([]imageResp, 0, len(refs))
	for _, ref := range refs {
		out = append(out, imageResp{URL: ref.URL, Caption: ref.Caption})
	}
	return out
}

type chatResp struct {
	Reply string `json:"reply"`
}

type turnResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type exchangeResp struct {
	Query  turnResp `json:"query"`
	Answer turnResp `json:"answer"`
}

type historyResp struct {
	Exchanges []exchangeResp `json:"exchanges"`
}

func newHistoryResp(exchanges []conversation.Exchange) historyResp {
	out := make([]exchangeResp, 0, len(exchanges))
	for _, e := range exchanges {
		out = append(out, exchangeResp{
			Query:  turnResp{Role: string(e.Query.Role), Text: e.Query.Text, CreatedAt: e.Query.CreatedAt},
			Answer: turnResp{Role: string(e.Answer.Role), Text: e.Answer.Text, CreatedAt: e.Answer.CreatedAt},
		})
	}
	return historyResp{Exchanges: out}
}
