package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	plannerGroup := rg.Group("/planner")
	{
		plannerGroup.POST("/itinerary", h.PlanTrip)
		plannerGroup.GET("/plans", h.Plans)
		plannerGroup.POST("/export", h.Export)
	}

	chat := rg.Group("/chat")
	{
		chat.POST("/messages", h.Chat)
		chat.GET("/messages", h.ChatHistory)
	}

	rg.GET("/features", h.Features)
}
