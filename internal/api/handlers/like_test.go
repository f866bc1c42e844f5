package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"loadout-backend/internal/api/handlers"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/mocks"
	"loadout-backend/internal/service"
	"loadout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LikeHandlerTestSuite defines the test suite for LikeHandler
type LikeHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLikeSv *mocks.MockLikeServiceInterface
	http       *testutils.HTTPTestSuite
	headers    map[string]string
	userID     uuid.UUID
}

func (suite *LikeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLikeSv = mocks.NewMockLikeServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	httpSuite, v1, headers := authedRouter(suite.T(), suite.userID, false)
	handler := handlers.NewLikeHandler(suite.mockLikeSv)
	v1.POST("/like", handler.ToggleLike)
	v1.GET("/like/:post", handler.GetLikeState)
	httpSuite.Router.POST("/open/like", handler.ToggleLike)

	suite.http = httpSuite
	suite.headers = headers
}

func (suite *LikeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LikeHandlerTestSuite) TestToggleLike() {
	post := uuid.NewString()
	suite.mockLikeSv.EXPECT().Toggle(gomock.Any(), suite.userID, post).
		Return(&service.LikeResult{Success: true, Liked: true, Rating: 8}, nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/like", url.Values{"post": {post}}, suite.headers)

	var resp service.LikeResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Equal(suite.T(), service.LikeResult{Success: true, Liked: true, Rating: 8}, resp)
}

func (suite *LikeHandlerTestSuite) TestToggleLike_MissingLoadoutIsUnsuccessful() {
	post := uuid.NewString()
	suite.mockLikeSv.EXPECT().Toggle(gomock.Any(), suite.userID, post).Return(&service.LikeResult{}, nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/like", url.Values{"post": {post}}, suite.headers)

	var resp service.LikeResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.False(suite.T(), resp.Success)
}

func (suite *LikeHandlerTestSuite) TestToggleLike_ConflictAfterRetries() {
	post := uuid.NewString()
	suite.mockLikeSv.EXPECT().Toggle(gomock.Any(), suite.userID, post).
		Return(nil, fmt.Errorf("failed to toggle like: %w", apperrors.ErrLikeConflict))

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/like", url.Values{"post": {post}}, suite.headers)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *LikeHandlerTestSuite) TestToggleLike_PostRequired() {
	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/like", url.Values{}, suite.headers)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid form submission")
}

func (suite *LikeHandlerTestSuite) TestToggleLike_NoSessionInContext() {
	w := suite.http.MakeFormRequest(http.MethodPost, "/open/like", url.Values{"post": {uuid.NewString()}}, nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Authentication required")
}

func (suite *LikeHandlerTestSuite) TestGetLikeState_Pending() {
	post := uuid.NewString()
	suite.mockLikeSv.EXPECT().State(gomock.Any(), suite.userID, post).
		Return(&service.LikeResult{Success: true, Liked: true, Rating: 3, Pending: true}, nil)

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/like/"+post, nil, suite.headers)

	var resp service.LikeResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Pending)
	assert.Equal(suite.T(), 3, resp.Rating)
}

func TestLikeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LikeHandlerTestSuite))
}
