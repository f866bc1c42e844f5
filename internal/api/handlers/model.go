package handlers

import (
	"net/http"

	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ModelHandler handles HTTP requests for weapon model operations
type ModelHandler struct {
	modelService service.ModelServiceInterface
}

// NewModelHandler creates a new model handler
func NewModelHandler(modelService service.ModelServiceInterface) *ModelHandler {
	return &ModelHandler{
		modelService: modelService,
	}
}

// SubmitModel handles POST /models
// @Summary Submit the weapon model form
// @Description Insert, update or delete a weapon model. Validation and store outcomes answer 200 with field errors.
// @Tags models
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData string false "Model ID (update, delete)"
// @Param name formData string false "Model name"
// @Param type formData string false "Weapon category"
// @Param intent formData string true "insert, update or delete"
// @Success 200 {object} service.FormResponse "Form outcome"
// @Failure 400 {object} ErrorResponse "Malformed form"
// @Failure 409 {object} ErrorResponse "A submission is already in flight"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /models [post]
func (h *ModelHandler) SubmitModel(c *gin.Context) {
	var form service.ModelForm
	if err := c.ShouldBind(&form); err != nil {
		badForm(c, err)
		return
	}

	resp, err := h.modelService.Submit(c.Request.Context(), &form)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListModels handles GET /models
// @Summary List weapon models
// @Description Get every weapon model in id order
// @Tags models
// @Produce json
// @Success 200 {array} service.ModelResponse "Successfully retrieved models"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /models [get]
func (h *ModelHandler) ListModels(c *gin.Context) {
	resp, err := h.modelService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetModel handles GET /models/:id
// @Summary Get weapon model by ID
// @Description Fetch a weapon model for the edit flow
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} service.ModelResponse "Successfully retrieved model"
// @Failure 400 {object} ErrorResponse "Invalid model ID"
// @Failure 404 {object} ErrorResponse "Model not found"
// @Security BearerAuth
// @Router /models/{id} [get]
func (h *ModelHandler) GetModel(c *gin.Context) {
	resp, err := h.modelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
