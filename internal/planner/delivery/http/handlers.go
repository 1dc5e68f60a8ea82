package http

import (
	"github.com/gin-gonic/gin"

	"globetrek/pkg/response"
)

// PlanTrip godoc
// @Summary     Generate a trip itinerary
// @Description Builds the planning prompt, runs the itinerary agent, and returns the generated plan with extracted images.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier (defaults to 'default')"
// @Param       body body planTripReq true "Trip parameters"
// @Success     200 {object} response.Resp{data=planTripResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Planner not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/itinerary [POST]
func (h *handler) PlanTrip(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanTripReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanTrip(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanTrip: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newPlanTripResp(output))
}

// Plans godoc
// @Summary     List generated plans
// @Description Returns the session's paired plan history.
// @Tags        Planner
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier (defaults to 'default')"
// @Success     200 {object} response.Resp{data=historyResp}
// @Router      /api/v1/planner/plans [GET]
func (h *handler) Plans(c *gin.Context) {
	exchanges := h.uc.Plans(c.Request.Context(), h.scope(c))
	response.OK(c, newHistoryResp(exchanges))
}

// Export godoc
// @Summary     Export an itinerary as PDF
// @Description Renders the given markdown (or the session's latest plan) to a downloadable PDF.
// @Tags        Planner
// @Accept      json
// @Produce     application/pdf
// @Param       X-Session-ID header string false "Session identifier (defaults to 'default')"
// @Param       body body exportReq false "Export parameters"
// @Success     200 {file} binary "PDF document"
// @Failure     400 {object} response.Resp "No itinerary to export"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportPDF(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportPDF: %v", err)
		h.respondError(c, err)
		return
	}

	response.PDF(c, output.Filename, output.Data)
}

// Chat godoc
// @Summary     Send a chat message
// @Description Runs a free-form travel question through the chat agent.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier (defaults to 'default')"
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Chat not configured"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, chatResp{Reply: output.Reply})
}

// ChatHistory godoc
// @Summary     List chat messages
// @Description Returns the session's paired chat history.
// @Tags        Chat
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier (defaults to 'default')"
// @Success     200 {object} response.Resp{data=historyResp}
// @Router      /api/v1/chat/messages [GET]
func (h *handler) ChatHistory(c *gin.Context) {
	exchanges := h.uc.ChatHistory(c.Request.Context(), h.scope(c))
	response.OK(c, newHistoryResp(exchanges))
}

// Features godoc
// @Summary     List enabled features
// @Description Reports which capabilities are active and which credentials are missing.
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp{data=Features}
// @Router      /api/v1/features [GET]
func (h *handler) Features(c *gin.Context) {
	response.OK(c, h.features)
}
