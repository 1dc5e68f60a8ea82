package usecase

import (
	"fmt"
	"strings"

	"globetrek/internal/planner"
)

const promptDateLayout = "Jan 02, 2006"

// buildPrompt assembles the agent query from the planning form. Presence
// checks only; validation happens before this runs.
func buildPrompt(in planner.PlanTripInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a trip to %s for %d travelers", in.Destination, in.Travelers)

	if in.OriginAirport != "" {
		fmt.Fprintf(&b, " departing from %s", in.OriginAirport)
	}

	fmt.Fprintf(&b, " from %s to %s with a %s budget in INR",
		in.StartDate.Format(promptDateLayout),
		in.EndDate.Format(promptDateLayout),
		in.Budget.Wording(),
	)

	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, ". We're interested in: %s", strings.Join(in.Interests, ", "))
	}

	if in.Accommodation != "" && in.Accommodation != "Any" {
		fmt.Fprintf(&b, ". We prefer staying in %s", in.Accommodation)
	}

	if in.Notes != "" {
		fmt.Fprintf(&b, ". Additional notes: %s", in.Notes)
	}

	b.WriteString(". Please include flight options, accommodations, daily activities, and all costs in INR.")

	return b.String()
}
