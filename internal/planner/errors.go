package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDates       = errors.New("start and end dates are required")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrNoPlanToExport     = errors.New("no itinerary available to export")
	ErrPlannerUnavailable = errors.New("trip planning is not configured")
	ErrChatUnavailable    = errors.New("chat is not configured")
)
