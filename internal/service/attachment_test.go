package service_test

import (
	"context"
	"testing"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/mocks"
	"loadout-backend/internal/repository"
	"loadout-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AttachmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockStore         *mocks.MockRecordStoreInterface
	attachmentService *service.AttachmentService
	typeService       *service.AttachmentTypeService
	ctx               context.Context
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockRecordStoreInterface(suite.ctrl)
	v := validator.New()
	suite.attachmentService = service.NewAttachmentService(suite.mockStore, v, nil)
	suite.typeService = service.NewAttachmentTypeService(suite.mockStore, v, nil)
	suite.ctx = adminCtx()
}

func (suite *AttachmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AttachmentServiceTestSuite) TestSubmit_UnselectedModelNeverReachesStore() {
	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{Model: -1, Type: 2, Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Please select a model", resp.Errors["model"])
	assert.NotContains(suite.T(), resp.Errors, "type")
}

func (suite *AttachmentServiceTestSuite) TestSubmit_UnselectedBoth() {
	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{Model: -1, Type: -1, Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Errors, 2)
	assert.Equal(suite.T(), "Please select an attachment type", resp.Errors["type"])
}

func (suite *AttachmentServiceTestSuite) TestSubmit_InsertCleansProsAndCons() {
	suite.mockStore.EXPECT().
		Insert(gomock.Any(), repository.TableAttachments, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Table, record repository.Record) (string, error) {
			a := record.(*models.Attachment)
			assert.Equal(suite.T(), uint(1), a.ModelID)
			assert.Equal(suite.T(), uint(2), a.TypeID)
			c := a.Characteristics.Data()
			assert.Equal(suite.T(), []string{"Damage Range", "Bullet Velocity"}, c.Pros)
			assert.Equal(suite.T(), []string{"ADS Time"}, c.Cons)
			return "11", nil
		})

	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{
		Model:  1,
		Type:   2,
		Pros:   " Damage Range, ,Bullet Velocity,Damage Range,",
		Cons:   "ADS Time,,ADS Time",
		Intent: "insert",
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "11", resp.ID)
}

func (suite *AttachmentServiceTestSuite) TestSubmit_Update() {
	suite.mockStore.EXPECT().
		Update(gomock.Any(), repository.TableAttachments, "4", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Table, _ string, partial map[string]interface{}) error {
			assert.Equal(suite.T(), uint(3), partial["model"])
			assert.Equal(suite.T(), uint(5), partial["type"])
			assert.Contains(suite.T(), partial, "characteristics")
			return nil
		})

	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{ID: "4", Model: 3, Type: 5, Intent: "update"})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
}

func (suite *AttachmentServiceTestSuite) TestSubmit_OverlongProIsRejected() {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{Model: 1, Type: 1, Pros: string(long), Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Each pro must be at most 200 characters", resp.Errors["pros"])
}

func (suite *AttachmentServiceTestSuite) TestSubmit_DuplicateAttachmentShowsBanner() {
	suite.mockStore.EXPECT().
		Insert(gomock.Any(), repository.TableAttachments, gomock.Any()).
		Return("", apperrors.NewStoreError(apperrors.CodeUniqueViolation, "duplicate key", nil))

	resp, err := suite.attachmentService.Submit(suite.ctx, &service.AttachmentForm{Model: 1, Type: 2, Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), map[string]string{"server": apperrors.MsgDuplicateRecord}, resp.Errors)
}

func (suite *AttachmentServiceTestSuite) TestTypeSubmit_DuplicateName() {
	suite.mockStore.EXPECT().
		Insert(gomock.Any(), repository.TableAttachmentTypes, gomock.Any()).
		Return("", apperrors.NewStoreError(apperrors.CodeUniqueViolation, "duplicate key", nil))

	resp, err := suite.typeService.Submit(suite.ctx, &service.AttachmentTypeForm{Name: "Monolithic Suppressor", Type: "muzzle", Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), map[string]string{"name": apperrors.MsgDuplicateName}, resp.Errors)
}

func (suite *AttachmentServiceTestSuite) TestTypeSubmit_InvalidSlot() {
	resp, err := suite.typeService.Submit(suite.ctx, &service.AttachmentTypeForm{Name: "Bayonet", Type: "bayonet", Intent: "insert"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Please select an attachment slot", resp.Errors["type"])
}

func (suite *AttachmentServiceTestSuite) TestGetByID_ResolvesNames() {
	suite.mockStore.EXPECT().
		Get(gomock.Any(), repository.TableAttachments, "5", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Table, _ string, dest interface{}) error {
			a := dest.(*models.Attachment)
			a.ID = 5
			a.ModelID = 1
			a.TypeID = 2
			a.Characteristics = models.NewCharacteristics([]string{"Range"}, nil)
			return nil
		})
	suite.mockStore.EXPECT().
		Get(gomock.Any(), repository.TableModels, "1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Table, _ string, dest interface{}) error {
			m := dest.(*models.Model)
			m.ID = 1
			m.Name = "M4"
			return nil
		})
	suite.mockStore.EXPECT().
		Get(gomock.Any(), repository.TableAttachmentTypes, "2", gomock.Any()).
		Return(apperrors.ErrAttachmentTypeNotFound)

	resp, err := suite.attachmentService.GetByID(suite.ctx, "5")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "M4", resp.ModelName)
	assert.Empty(suite.T(), resp.TypeName)
	assert.Equal(suite.T(), []string{"Range"}, resp.Pros)
	assert.Equal(suite.T(), []string{}, resp.Cons)
}

func (suite *AttachmentServiceTestSuite) TestGetAll_PreloadsReferences() {
	suite.mockStore.EXPECT().
		List(gomock.Any(), repository.TableAttachments, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Table, dest interface{}, opts ...repository.ListOption) error {
			assert.Len(suite.T(), opts, 1)
			rows := dest.(*[]models.Attachment)
			*rows = []models.Attachment{{
				ReferenceModel:  models.ReferenceModel{ID: 1},
				ModelID:         1,
				TypeID:          2,
				Characteristics: models.NewCharacteristics([]string{"a"}, []string{"b"}),
				WeaponModel:     &models.Model{Name: "M4"},
				AttachmentType:  &models.AttachmentType{Name: "Tactical Laser", Type: models.SlotLaser},
			}}
			return nil
		})

	resp, err := suite.attachmentService.GetAll(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Tactical Laser", resp[0].TypeName)
	assert.Equal(suite.T(), "laser", resp[0].Slot)
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
