package handlers

import (
	"net/http"

	"loadout-backend/internal/auth"
	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LikeHandler handles the like protocol endpoints
type LikeHandler struct {
	likeService service.LikeServiceInterface
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likeService service.LikeServiceInterface) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// ToggleLike handles POST /like
// @Summary Toggle the caller's like on a loadout
// @Description Likes or unlikes the loadout and returns the confirmed rating. A missing loadout answers success=false.
// @Tags likes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param post formData string true "Loadout ID"
// @Success 200 {object} service.LikeResult "Like outcome"
// @Failure 400 {object} ErrorResponse "Malformed form"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /like [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var form service.LikeForm
	if err := c.ShouldBind(&form); err != nil {
		badForm(c, err)
		return
	}

	resp, err := h.likeService.Toggle(c.Request.Context(), userID, form.Post)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLikeState handles GET /like/:post
// @Summary Get the caller's like state for a loadout
// @Description Includes a toggle still in flight, flagged as pending
// @Tags likes
// @Produce json
// @Param post path string true "Loadout ID"
// @Success 200 {object} service.LikeResult "Like state"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /like/{post} [get]
func (h *LikeHandler) GetLikeState(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.likeService.State(c.Request.Context(), userID, c.Param("post"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
