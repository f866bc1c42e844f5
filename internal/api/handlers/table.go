package handlers

import (
	"net/http"

	"loadout-backend/internal/auth"
	"loadout-backend/internal/service"
	"loadout-backend/internal/table"

	"github.com/gin-gonic/gin"
)

// TableHandler serves the caller's server-held table views
type TableHandler struct {
	tableService service.TableServiceInterface
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService service.TableServiceInterface) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// TableListResponse names the tables a view can be opened on
type TableListResponse struct {
	Tables []string `json:"tables"`
}

// ListTables handles GET /tables
// @Summary List viewable tables
// @Tags tables
// @Produce json
// @Success 200 {object} TableListResponse "Viewable tables"
// @Security BearerAuth
// @Router /tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, TableListResponse{Tables: h.tableService.Tables()})
}

// GetTable handles GET /tables/:table
// @Summary Get the caller's view of a table
// @Description Rows after the view's sort and filters, with the editor target if one is open
// @Tags tables
// @Produce json
// @Param table path string true "Table name"
// @Success 200 {object} table.Snapshot "Table view"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Table not found"
// @Security BearerAuth
// @Router /tables/{table} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	session, ok := viewSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	snap, err := h.tableService.Snapshot(c.Request.Context(), session, c.Param("table"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// DispatchIntent handles POST /tables/:table/intents
// @Summary Dispatch a controls intent to the caller's view
// @Description Sort, filter, insert, refresh, edit or close. Filter values settle after the debounce window.
// @Tags tables
// @Accept json
// @Produce json
// @Param table path string true "Table name"
// @Param intent body table.Intent true "Intent"
// @Success 200 {object} service.IntentResponse "Effect and resulting view"
// @Failure 400 {object} ErrorResponse "Invalid intent or column"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Table or record not found"
// @Security BearerAuth
// @Router /tables/{table}/intents [post]
func (h *TableHandler) DispatchIntent(c *gin.Context) {
	session, ok := viewSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var intent table.Intent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intent", "details": err.Error()})
		return
	}

	resp, err := h.tableService.Dispatch(c.Request.Context(), session, c.Param("table"), intent)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CloseViews handles DELETE /tables
// @Summary Discard the caller's table views
// @Tags tables
// @Success 204 "Views discarded"
// @Security BearerAuth
// @Router /tables [delete]
func (h *TableHandler) CloseViews(c *gin.Context) {
	session, ok := viewSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	h.tableService.Drop(session)
	c.Status(http.StatusNoContent)
}

// viewSession keys table views by the signed-in user
func viewSession(c *gin.Context) (string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return "", false
	}
	return userID.String(), true
}
