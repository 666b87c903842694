package services

import (
	"testing"

	"eduadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditPoints(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)

	record, err := CreditPoints(db, user.ID, 50, models.PointsTypeAdminAdjust, "bonus", "admin", 0)
	require.NoError(t, err)

	assert.Equal(t, int64(50), record.Delta)
	assert.Equal(t, uint(100), record.BalanceBefore)
	assert.Equal(t, uint(150), record.BalanceAfter)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, uint(150), fresh.Points)
}

func TestDebitPoints(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)

	record, err := DebitPoints(db, user.ID, 40, models.PointsTypeCoursePurchase, "purchase", "course", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(-40), record.Delta)
	assert.Equal(t, uint(100), record.BalanceBefore)
	assert.Equal(t, uint(60), record.BalanceAfter)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, uint(60), fresh.Points)
}

func TestDebitInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 30, false)

	_, err := DebitPoints(db, user.ID, 100, models.PointsTypeCoursePurchase, "purchase", "course", 1)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Balance untouched, no ledger row written
	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, uint(30), fresh.Points)

	var count int64
	db.Model(&models.PointsRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestZeroAmountRejected(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)

	_, err := CreditPoints(db, user.ID, 0, models.PointsTypeAdminAdjust, "noop", "admin", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = DebitPoints(db, user.ID, 0, models.PointsTypeAdminAdjust, "noop", "admin", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedgerMissingUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreditPoints(db, 77, 10, models.PointsTypeAdminAdjust, "bonus", "admin", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = DebitPoints(db, 77, 10, models.PointsTypeAdminAdjust, "fine", "admin", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReversalAppendsNewRecord(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)

	debit, err := DebitPoints(db, user.ID, 60, models.PointsTypeCoursePurchase, "purchase", "course", 1)
	require.NoError(t, err)

	credit, err := CreditPoints(db, user.ID, 60, models.PointsTypeRefund, "refund", "course", 1)
	require.NoError(t, err)

	// Both entries remain, the original is untouched
	var records []models.PointsRecord
	require.NoError(t, db.Order("id asc").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, debit.ID, records[0].ID)
	assert.Equal(t, int64(-60), records[0].Delta)
	assert.Equal(t, credit.ID, records[1].ID)
	assert.Equal(t, int64(60), records[1].Delta)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, uint(100), fresh.Points)
}
