package service_test

import (
	"testing"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/repository"
	"loadout-backend/internal/service"
	"loadout-backend/internal/table"
	"loadout-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TableServiceTestSuite struct {
	testutils.SQLiteTestSuite
	store        *repository.RecordStore
	tableService *service.TableService
	fixture      *testutils.Fixture
}

func (suite *TableServiceTestSuite) SetupTest() {
	suite.SQLiteTestSuite.SetupTest()
	suite.store = repository.NewRecordStore(suite.DB)
	suite.tableService = service.NewTableService(suite.store, suite.Config)

	fx, err := testutils.SeedFixture(suite.DB, 3)
	suite.Require().NoError(err)
	suite.fixture = fx
	suite.Require().NoError(suite.DB.Create(testutils.NewModelFactory().WithName("AK-47")).Error)
	suite.Require().NoError(suite.DB.Create(testutils.NewModelFactory().WithName("DLQ33")).Error)
}

func (suite *TableServiceTestSuite) TestSnapshot_ModelsInStoreOrder() {
	snap, err := suite.tableService.Snapshot(testutils.AdminContext(), "s1", "models")

	suite.Require().NoError(err)
	suite.Equal("models", snap.Table)
	suite.Require().Len(snap.Rows, 3)
	suite.Equal("M4", snap.Rows[0].Cells["name"])
	suite.Equal("AK-47", snap.Rows[1].Cells["name"])
	suite.Equal(snap.Rows[0].EditID, snap.Rows[0].Cells["id"])
}

func (suite *TableServiceTestSuite) TestDispatch_SortAndFilter() {
	ctx := testutils.AdminContext()

	resp, err := suite.tableService.Dispatch(ctx, "s1", "models", table.Intent{Kind: table.IntentSortAdd, Column: "name"})
	suite.Require().NoError(err)
	names := []string{}
	for _, r := range resp.Snapshot.Rows {
		names = append(names, r.Cells["name"])
	}
	suite.Equal([]string{"AK-47", "DLQ33", "M4"}, names)

	_, err = suite.tableService.Dispatch(ctx, "s1", "models", table.Intent{Kind: table.IntentFilterToggle, Column: "name"})
	suite.Require().NoError(err)
	resp, err = suite.tableService.Dispatch(ctx, "s1", "models", table.Intent{Kind: table.IntentFilterSet, Column: "name", Value: "dl"})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Snapshot.Rows, 1)
	suite.Equal("DLQ33", resp.Snapshot.Rows[0].Cells["name"])

	other, err := suite.tableService.Snapshot(ctx, "s2", "models")
	suite.Require().NoError(err)
	suite.Len(other.Rows, 3)
	suite.Empty(other.Sort)
}

func (suite *TableServiceTestSuite) TestDispatch_EditFetchesRecord() {
	ctx := testutils.AdminContext()

	resp, err := suite.tableService.Dispatch(ctx, "s1", "models", table.Intent{Kind: table.IntentEdit, ID: suite.fixture.Model.RecordID()})

	suite.Require().NoError(err)
	suite.True(resp.Effect.EditorOpen)
	suite.Require().NotNil(resp.Snapshot.Editing)
	record, ok := resp.Snapshot.Editing.Record.(*models.Model)
	suite.Require().True(ok)
	suite.Equal("M4", record.Name)
}

func (suite *TableServiceTestSuite) TestAccessRules() {
	user := testutils.UserContext(suite.fixture.Owner.ID, suite.fixture.Owner.Username)

	_, err := suite.tableService.Snapshot(user, "u1", "models")
	suite.True(apperrors.IsAuthorization(err))

	snap, err := suite.tableService.Snapshot(user, "u1", "loadouts")
	suite.Require().NoError(err)
	suite.Require().Len(snap.Rows, 1)
	suite.Equal("3", snap.Rows[0].Cells["rating"])
	suite.Equal("M4", snap.Rows[0].Cells["model"])

	_, err = suite.tableService.Snapshot(testutils.AdminContext(), "a1", "profiles")
	suite.True(apperrors.IsNotFound(err))
}

func (suite *TableServiceTestSuite) TestDispatch_InvalidIntentAndColumn() {
	ctx := testutils.AdminContext()

	_, err := suite.tableService.Dispatch(ctx, "s1", "models", table.Intent{Kind: "explode"})
	suite.ErrorIs(err, apperrors.ErrInvalidIntent)

	_, err = suite.tableService.Dispatch(ctx, "s1", "attachments", table.Intent{Kind: table.IntentSortAdd, Column: "pros"})
	suite.ErrorIs(err, apperrors.ErrInvalidColumn)
}

func (suite *TableServiceTestSuite) TestCommittedMutationRefreshesOpenViews() {
	ctx := testutils.AdminContext()
	_, err := suite.tableService.Snapshot(ctx, "s1", "models")
	suite.Require().NoError(err)

	modelService := service.NewModelService(suite.store, validator.New(), suite.tableService)
	resp, err := modelService.Submit(ctx, &service.ModelForm{Name: "Kilo 141", Type: "assault", Intent: "insert"})
	suite.Require().NoError(err)
	suite.Require().True(resp.Success, resp.Errors)

	snap, err := suite.tableService.Snapshot(ctx, "s1", "models")
	suite.Require().NoError(err)
	suite.Len(snap.Rows, 4)
}

func (suite *TableServiceTestSuite) TestNonAdminFormSubmitSurfacesPermissionBanner() {
	user := testutils.UserContext(suite.fixture.Owner.ID, suite.fixture.Owner.Username)
	types := service.NewAttachmentTypeService(suite.store, validator.New(), suite.tableService)

	resp, err := types.Submit(user, &service.AttachmentTypeForm{Name: "Tactical Laser", Type: "laser", Intent: "insert"})

	suite.Require().NoError(err)
	suite.False(resp.Success)
	suite.Equal(map[string]string{"server": apperrors.MsgPermissionDenied}, resp.Errors)
}

func (suite *TableServiceTestSuite) TestDuplicateAttachmentTypeOnStore() {
	ctx := testutils.AdminContext()
	types := service.NewAttachmentTypeService(suite.store, validator.New(), nil)

	resp, err := types.Submit(ctx, &service.AttachmentTypeForm{Name: suite.fixture.AttachmentType.Name, Type: "muzzle", Intent: "insert"})

	suite.Require().NoError(err)
	suite.Equal(map[string]string{"name": apperrors.MsgDuplicateName}, resp.Errors)
}

func TestTableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}

func TestTablesListsViewableTables(t *testing.T) {
	svc := service.NewTableService(nil, testutils.TestConfig())

	tables := svc.Tables()
	require.Len(t, tables, 4)
	assert.Contains(t, tables, "attachment_names")
	assert.NotContains(t, tables, "profiles")
}
