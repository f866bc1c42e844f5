package handlers

import (
	"net/http"

	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LoadoutHandler handles HTTP requests for loadout operations
type LoadoutHandler struct {
	loadoutService service.LoadoutServiceInterface
}

// NewLoadoutHandler creates a new loadout handler
func NewLoadoutHandler(loadoutService service.LoadoutServiceInterface) *LoadoutHandler {
	return &LoadoutHandler{
		loadoutService: loadoutService,
	}
}

// CreateLoadout handles POST /loadouts
// @Summary Create a loadout
// @Description Create a loadout for the caller. Slots set to -1 are left empty.
// @Tags loadouts
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Loadout name"
// @Param model formData int true "Model ID"
// @Param muzzle formData int false "Attachment ID or -1"
// @Param barrel formData int false "Attachment ID or -1"
// @Param optic formData int false "Attachment ID or -1"
// @Param stock formData int false "Attachment ID or -1"
// @Param grip formData int false "Attachment ID or -1"
// @Param magazine formData int false "Attachment ID or -1"
// @Param underbarrel formData int false "Attachment ID or -1"
// @Param laser formData int false "Attachment ID or -1"
// @Param perk formData int false "Attachment ID or -1"
// @Param tags formData string false "Comma separated tags"
// @Success 200 {object} service.FormResponse "Form outcome"
// @Failure 400 {object} ErrorResponse "Malformed form"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /loadouts [post]
func (h *LoadoutHandler) CreateLoadout(c *gin.Context) {
	var form service.LoadoutForm
	if err := c.ShouldBind(&form); err != nil {
		badForm(c, err)
		return
	}

	resp, err := h.loadoutService.Create(c.Request.Context(), &form)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLoadouts handles GET /loadouts
// @Summary List loadouts with their ratings
// @Tags loadouts
// @Produce json
// @Success 200 {array} service.LoadoutResponse "Successfully retrieved loadouts"
// @Security BearerAuth
// @Router /loadouts [get]
func (h *LoadoutHandler) ListLoadouts(c *gin.Context) {
	resp, err := h.loadoutService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyLoadouts handles GET /loadouts/mine
// @Summary List the caller's loadouts
// @Tags loadouts
// @Produce json
// @Success 200 {array} service.LoadoutResponse "Successfully retrieved loadouts"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /loadouts/mine [get]
func (h *LoadoutHandler) ListMyLoadouts(c *gin.Context) {
	resp, err := h.loadoutService.GetMine(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
