package handlers_test

import (
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

// LoadoutHandlerTestSuite defines the test suite for LoadoutHandler
type LoadoutHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLoadoutSv *mocks.MockLoadoutServiceInterface
	http          *testutils.HTTPTestSuite
	headers       map[string]string
	userID        uuid.UUID
}

func (suite *LoadoutHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLoadoutSv = mocks.NewMockLoadoutServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	httpSuite, v1, headers := authedRouter(suite.T(), suite.userID, false)
	handler := handlers.NewLoadoutHandler(suite.mockLoadoutSv)
	v1.POST("/loadouts", handler.CreateLoadout)
	v1.GET("/loadouts", handler.ListLoadouts)
	v1.GET("/loadouts/mine", handler.ListMyLoadouts)

	suite.http = httpSuite
	suite.headers = headers
}

func (suite *LoadoutHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LoadoutHandlerTestSuite) TestCreateLoadout_OmittedSlotsAreUnset() {
	expected := &service.LoadoutForm{
		Name:        "Sniper support",
		Model:       3,
		Muzzle:      1,
		Barrel:      -1,
		Optic:       5,
		Stock:       -1,
		Grip:        -1,
		Magazine:    -1,
		Underbarrel: -1,
		Laser:       -1,
		Perk:        -1,
		Tags:        "ranked",
	}
	suite.mockLoadoutSv.EXPECT().Create(gomock.Any(), expected).
		Return(&service.FormResponse{Success: true, ID: uuid.NewString()}, nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/loadouts", url.Values{
		"name":   {"Sniper support"},
		"model":  {"3"},
		"muzzle": {"1"},
		"optic":  {"5"},
		"tags":   {"ranked"},
	}, suite.headers)

	var resp service.FormResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
}

func (suite *LoadoutHandlerTestSuite) TestCreateLoadout_AttachmentCapIsAFieldError() {
	suite.mockLoadoutSv.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&service.FormResponse{
		Errors: map[string]string{"attachment": "You can only select up to 5 attachments"},
	}, nil)

	w := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/loadouts", url.Values{"name": {"x"}, "model": {"1"}}, suite.headers)

	var resp service.FormResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Equal(suite.T(), "You can only select up to 5 attachments", resp.Errors["attachment"])
}

func (suite *LoadoutHandlerTestSuite) TestListLoadouts() {
	suite.mockLoadoutSv.EXPECT().GetAll(gomock.Any()).Return([]service.LoadoutResponse{
		{ID: uuid.New(), Name: "Meta", Rating: 12, Liked: true, Tags: []string{"ranked"}},
	}, nil)

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/loadouts", nil, suite.headers)

	var resp []service.LoadoutResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), 12, resp[0].Rating)
	assert.True(suite.T(), resp[0].Liked)
}

func (suite *LoadoutHandlerTestSuite) TestListMyLoadouts_AnonymousActor() {
	suite.mockLoadoutSv.EXPECT().GetMine(gomock.Any()).Return(nil, apperrors.ErrUserNotInCtx)

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/loadouts/mine", nil, suite.headers)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Authentication required")
}

func TestLoadoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoadoutHandlerTestSuite))
}
