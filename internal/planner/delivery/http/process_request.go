package http

import (
	"github.com/gin-gonic/gin"

	"globetrek/internal/model"
)

const (
	sessionHeader  = "X-Session-ID"
	defaultSession = "default"
)

// scope extracts the caller scope. The UI is single-user, so a missing
// session header maps to the shared default session.
func (h *handler) scope(c *gin.Context) model.Scope {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = defaultSession
	}
	return model.Scope{SessionID: sessionID}
}

// processPlanTripReq binds and validates the plan request body.
func (h *handler) processPlanTripReq(c *gin.Context) (planTripReq, error) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processChatReq binds the chat message body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportReq binds the export body. An empty body is valid: export
// then falls back to the latest stored plan.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
