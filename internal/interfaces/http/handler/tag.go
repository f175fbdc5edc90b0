package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	crmapp "github.com/crm/backend/internal/application/crm"
)

// TagHandler handles tag API endpoints
type TagHandler struct {
	BaseHandler
	tagService *crmapp.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *crmapp.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// List handles GET /crm/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context(), getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tags)
}

// Create handles POST /crm/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req crmapp.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tag)
}

// Delete handles DELETE /crm/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), getUserID(c), tagID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListForContact handles GET /crm/contacts/:id/tags
func (h *TagHandler) ListForContact(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	tags, err := h.tagService.ListForContact(c.Request.Context(), getUserID(c), contactID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tags)
}

// Attach handles POST /crm/contacts/:id/tags/:tagId
func (h *TagHandler) Attach(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	if err := h.tagService.Attach(c.Request.Context(), getUserID(c), contactID, tagID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Detach handles DELETE /crm/contacts/:id/tags/:tagId
func (h *TagHandler) Detach(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	if err := h.tagService.Detach(c.Request.Context(), getUserID(c), contactID, tagID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers tag routes
func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/crm/tags", h.List)
	rg.POST("/crm/tags", h.Create)
	rg.DELETE("/crm/tags/:id", h.Delete)
	rg.GET("/crm/contacts/:id/tags", h.ListForContact)
	rg.POST("/crm/contacts/:id/tags/:tagId", h.Attach)
	rg.DELETE("/crm/contacts/:id/tags/:tagId", h.Detach)
}
