package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	crmapp "github.com/crm/backend/internal/application/crm"
)

// ActivityHandler handles activity API endpoints
type ActivityHandler struct {
	BaseHandler
	activityService *crmapp.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *crmapp.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListByContact handles GET /crm/contacts/:id/activities
func (h *ActivityHandler) ListByContact(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	activities, err := h.activityService.ListByContact(c.Request.Context(), getUserID(c), contactID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, activities)
}

// Log handles POST /crm/contacts/:id/activities
func (h *ActivityHandler) Log(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	var req crmapp.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activity, err := h.activityService.Log(c.Request.Context(), getUserID(c), contactID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, activity)
}

// Delete handles DELETE /crm/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid activity ID")
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), getUserID(c), activityID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers activity routes
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/crm/contacts/:id/activities", h.ListByContact)
	rg.POST("/crm/contacts/:id/activities", h.Log)
	rg.DELETE("/crm/activities/:id", h.Delete)
}
