package handlers

import (
	"net/http"

	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler handles HTTP requests for attachment operations
type AttachmentHandler struct {
	attachmentService service.AttachmentServiceInterface
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachmentService service.AttachmentServiceInterface) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

// SubmitAttachment handles POST /attachments
// @Summary Submit the attachment form
// @Description Insert, update or delete an attachment. Pros and cons are comma separated.
// @Tags attachments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData string false "Attachment ID (update, delete)"
// @Param model formData int false "Model ID, -1 when unselected"
// @Param type formData int false "Attachment type ID, -1 when unselected"
// @Param pros formData string false "Comma separated pros"
// @Param cons formData string false "Comma separated cons"
// @Param intent formData string true "insert, update or delete"
// @Success 200 {object} service.FormResponse "Form outcome"
// @Failure 400 {object} ErrorResponse "Malformed form"
// @Failure 409 {object} ErrorResponse "A submission is already in flight"
// @Security BearerAuth
// @Router /attachments [post]
func (h *AttachmentHandler) SubmitAttachment(c *gin.Context) {
	var form service.AttachmentForm
	if err := c.ShouldBind(&form); err != nil {
		badForm(c, err)
		return
	}

	resp, err := h.attachmentService.Submit(c.Request.Context(), &form)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAttachments handles GET /attachments
// @Summary List attachments with their model and type names
// @Tags attachments
// @Produce json
// @Success 200 {array} service.AttachmentResponse "Successfully retrieved attachments"
// @Security BearerAuth
// @Router /attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	resp, err := h.attachmentService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAttachment handles GET /attachments/:id
// @Summary Get attachment by ID
// @Tags attachments
// @Produce json
// @Param id path int true "Attachment ID"
// @Success 200 {object} service.AttachmentResponse "Successfully retrieved attachment"
// @Failure 400 {object} ErrorResponse "Invalid attachment ID"
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	resp, err := h.attachmentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
