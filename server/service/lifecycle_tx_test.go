package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/constant"
	errs "github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/error"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/repository"
)

// newMockDB points the transition engine at a mocked connection so the
// write-side invariants can be asserted statement by statement.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	prev := global.DBConn
	global.DBConn = gdb
	repository.SetupRepository(gdb)
	t.Cleanup(func() {
		global.DBConn = prev
		repository.SetupRepository(prev)
		_ = db.Close()
	})
	return mock
}

func assetRow(id, tag, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "asset_tag_id", "status"}).AddRow(id, tag, status)
}

// expectNoActive answers the open checkout and open lease lookups of
// loadActiveState with empty result sets.
func expectNoActive(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT (.+) FROM `checkouts`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM `leases`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

// A second dispose must fail the precondition before any row is written,
// so the disposals table keeps exactly one row per asset.
func TestDisposeOfDisposedAssetWritesNothing(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `assets`").WillReturnRows(assetRow("a-1", "AT-0001", constant.DisposeSold))
	expectNoActive(mock)
	mock.ExpectRollback()

	svc := new(lifecycleService)
	result, err := svc.Dispose(dto.DisposeForCreate{
		AssetIds:      []string{"a-1"},
		DisposeReason: constant.DisposeScrapped,
		DisposeDate:   "2026-08-01",
	})
	require.Error(t, err)
	assert.Equal(t, errs.ErrAlreadyDisposed, pkgerrors.Cause(err))
	assert.False(t, result.Success)
	// no insert was expected; an attempted disposal row would fail here
	assert.NoError(t, mock.ExpectationsWereMet())
}

// One bad asset in a batch rolls back the rows already written for the
// good ones.
func TestBatchRollsBackOnFailedPrecondition(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	// first asset passes and writes its checkout plus the status update
	mock.ExpectQuery("SELECT (.+) FROM `assets`").WillReturnRows(assetRow("a-1", "AT-0001", constant.StatusAvailable))
	expectNoActive(mock)
	mock.ExpectExec("INSERT INTO `checkouts`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `assets`").WillReturnResult(sqlmock.NewResult(0, 1))
	// second asset already has an open checkout
	mock.ExpectQuery("SELECT (.+) FROM `assets`").WillReturnRows(assetRow("a-2", "AT-0002", constant.StatusCheckedOut))
	mock.ExpectQuery("SELECT (.+) FROM `checkouts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "asset_id", "employee_user_id"}).AddRow("co-9", "a-2", "emp-1"))
	mock.ExpectQuery("SELECT (.+) FROM `leases`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	svc := new(lifecycleService)
	result, err := svc.Checkout(dto.CheckoutForCreate{
		AssetIds:       []string{"a-1", "a-2"},
		EmployeeUserID: "emp-1",
		CheckoutDate:   "2026-08-01",
	})
	require.Error(t, err)
	assert.Equal(t, errs.ErrAlreadyCheckedOut, pkgerrors.Cause(err))
	assert.False(t, result.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Checkin must close the open checkout found under the row lock, not an
// arbitrary one.
func TestCheckinClosesTheOpenCheckout(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `assets`").WillReturnRows(assetRow("a-1", "AT-0001", constant.StatusCheckedOut))
	mock.ExpectQuery("SELECT (.+) FROM `checkouts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "asset_id", "employee_user_id"}).AddRow("co-1", "a-1", "emp-7"))
	mock.ExpectQuery("SELECT (.+) FROM `leases`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `checkins`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `assets`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := new(lifecycleService)
	result, err := svc.Checkin(dto.CheckinForCreate{
		AssetIds:    []string{"a-1"},
		CheckinDate: "2026-08-02",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Records, 1)
	rec, ok := result.Records[0].(model.Checkin)
	require.True(t, ok)
	assert.Equal(t, "co-1", rec.CheckoutID)
	assert.Equal(t, "a-1", rec.AssetID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Unknown ids fail the whole batch with the not-found sentinel.
func TestTransitionOnUnknownAsset(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `assets`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	svc := new(lifecycleService)
	_, err := svc.Audit(dto.AuditForCreate{
		AssetIds:  []string{"ghost"},
		Auditor:   "emp-1",
		AuditDate: "2026-08-01",
	})
	require.Error(t, err)
	assert.Equal(t, errs.ErrAssetNotFound, pkgerrors.Cause(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
