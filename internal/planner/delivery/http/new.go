package http

import (
	"github.com/gin-gonic/gin"

	"globetrek/internal/planner"
	pkgLog "globetrek/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	PlanTrip(c *gin.Context)
	Plans(c *gin.Context)
	Export(c *gin.Context)
	Chat(c *gin.Context)
	ChatHistory(c *gin.Context)
	Features(c *gin.Context)
}

// Features reports which capabilities are enabled for this deployment and
// which credentials are missing for the rest.
type Features struct {
	Planner     bool     `json:"planner"`
	Chat        bool     `json:"chat"`
	FlightTools bool     `json:"flight_tools"`
	ImageSearch bool     `json:"image_search"`
	MissingKeys []string `json:"missing_keys"`
}

type handler struct {
	l        pkgLog.Logger
	uc       planner.UseCase
	features Features
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase, features Features) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		features: features,
	}
}
