package handlers_test

import (
	"testing"

	"loadout-backend/internal/auth"
	"loadout-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// authedRouter returns a router whose /api/v1 group requires a session,
// plus headers carrying a token for the given user
func authedRouter(t *testing.T, userID uuid.UUID, admin bool) (*testutils.HTTPTestSuite, *gin.RouterGroup, map[string]string) {
	t.Helper()
	authService, err := auth.NewAuthService(testutils.TestJWTSecret)
	require.NoError(t, err)

	httpSuite := testutils.SetupHTTPTest()
	v1 := httpSuite.Router.Group("/api/v1")
	v1.Use(auth.NewAuthMiddleware(authService).RequireAuth())

	headers := testutils.BearerHeader(testutils.SignToken(t, userID, "ghost", admin))
	return httpSuite, v1, headers
}
