package handlers

import (
	"net/http"

	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttachmentTypeHandler handles HTTP requests for attachment type operations
type AttachmentTypeHandler struct {
	typeService service.AttachmentTypeServiceInterface
}

// NewAttachmentTypeHandler creates a new attachment type handler
func NewAttachmentTypeHandler(typeService service.AttachmentTypeServiceInterface) *AttachmentTypeHandler {
	return &AttachmentTypeHandler{
		typeService: typeService,
	}
}

// SubmitAttachmentType handles POST /types
// @Summary Submit the attachment type form
// @Description Insert, update or delete an attachment type. Validation and store outcomes answer 200 with field errors.
// @Tags types
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData string false "Attachment type ID (update, delete)"
// @Param name formData string false "Attachment type name"
// @Param type formData string false "Attachment slot"
// @Param intent formData string true "insert, update or delete"
// @Success 200 {object} service.FormResponse "Form outcome"
// @Failure 400 {object} ErrorResponse "Malformed form"
// @Failure 409 {object} ErrorResponse "A submission is already in flight"
// @Security BearerAuth
// @Router /types [post]
func (h *AttachmentTypeHandler) SubmitAttachmentType(c *gin.Context) {
	var form service.AttachmentTypeForm
	if err := c.ShouldBind(&form); err != nil {
		badForm(c, err)
		return
	}

	resp, err := h.typeService.Submit(c.Request.Context(), &form)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAttachmentTypes handles GET /types
// @Summary List attachment types
// @Tags types
// @Produce json
// @Success 200 {array} service.AttachmentTypeResponse "Successfully retrieved attachment types"
// @Security BearerAuth
// @Router /types [get]
func (h *AttachmentTypeHandler) ListAttachmentTypes(c *gin.Context) {
	resp, err := h.typeService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAttachmentType handles GET /types/:id
// @Summary Get attachment type by ID
// @Tags types
// @Produce json
// @Param id path int true "Attachment type ID"
// @Success 200 {object} service.AttachmentTypeResponse "Successfully retrieved attachment type"
// @Failure 400 {object} ErrorResponse "Invalid attachment type ID"
// @Failure 404 {object} ErrorResponse "Attachment type not found"
// @Security BearerAuth
// @Router /types/{id} [get]
func (h *AttachmentTypeHandler) GetAttachmentType(c *gin.Context) {
	resp, err := h.typeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
