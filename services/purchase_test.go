package services

import (
	"testing"

	"eduadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 500, false)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, models.PurchaseStatusSuccess, purchase.Status)
	assert.Equal(t, uint(500), purchase.PointsSpent)
	assert.NotEmpty(t, purchase.OrderNo)

	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(0), freshUser.Points)

	var freshCourse models.Course
	require.NoError(t, db.First(&freshCourse, course.ID).Error)
	assert.Equal(t, uint(1), freshCourse.StudentCount)

	var enrollments []models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&enrollments).Error)
	require.Len(t, enrollments, 1)
	assert.True(t, enrollments[0].IsActive)

	var records []models.PointsRecord
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, int64(-500), records[0].Delta)
	assert.Equal(t, models.PointsTypeCoursePurchase, records[0].Type)

	purchased, err := HasPurchased(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, purchased)
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)
	course := createTestCourse(t, db, 500)

	_, err := PurchaseCourse(db, user.ID, course.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Nothing from the rolled-back transaction is visible
	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(100), freshUser.Points)

	var freshCourse models.Course
	require.NoError(t, db.First(&freshCourse, course.ID).Error)
	assert.Equal(t, uint(0), freshCourse.StudentCount)

	var enrollCount, recordCount int64
	db.Model(&models.Enrollment{}).Count(&enrollCount)
	db.Model(&models.PointsRecord{}).Count(&recordCount)
	assert.Equal(t, int64(0), enrollCount)
	assert.Equal(t, int64(0), recordCount)

	// The dead-end FAILED record is kept
	var failed models.CoursePurchase
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&failed).Error)
	assert.Equal(t, models.PurchaseStatusFailed, failed.Status)

	purchased, err := HasPurchased(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, purchased)
}

func TestPurchaseAfterFailedAttempt(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)
	course := createTestCourse(t, db, 500)

	_, err := PurchaseCourse(db, user.ID, course.ID)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// Top up and retry; the FAILED row does not block a fresh purchase
	_, err = CreditPoints(db, user.ID, 400, models.PointsTypeAdminAdjust, "top up", "admin", 0)
	require.NoError(t, err)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusSuccess, purchase.Status)
}

func TestPurchaseExemptUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, true)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(0), purchase.PointsSpent)
	assert.Equal(t, models.PurchaseStatusSuccess, purchase.Status)

	// Balance untouched, no ledger entry, enrollment created
	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(100), freshUser.Points)

	var recordCount int64
	db.Model(&models.PointsRecord{}).Count(&recordCount)
	assert.Equal(t, int64(0), recordCount)

	var enrollCount int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollCount)
	assert.Equal(t, int64(1), enrollCount)
}

func TestPurchaseDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 1000, false)
	course := createTestCourse(t, db, 300)

	_, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	_, err = PurchaseCourse(db, user.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyPurchased)

	// Only one debit happened
	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(700), freshUser.Points)
}

func TestPurchaseNotPurchasable(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 1000, false)
	course := createTestCourse(t, db, 0)

	_, err := PurchaseCourse(db, user.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotPurchasable)
}

func TestPurchaseMissingEntities(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 1000, false)
	course := createTestCourse(t, db, 100)

	_, err := PurchaseCourse(db, 999, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = PurchaseCourse(db, user.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefundRestoresState(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 500, false)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	refunded, err := RefundPurchase(db, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseStatusRefunded, refunded.Status)

	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(500), freshUser.Points)

	var freshCourse models.Course
	require.NoError(t, db.First(&freshCourse, course.ID).Error)
	assert.Equal(t, uint(0), freshCourse.StudentCount)

	var enrollCount int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollCount)
	assert.Equal(t, int64(0), enrollCount)

	// Two ledger entries: the debit and its reversal
	var records []models.PointsRecord
	require.NoError(t, db.Order("id asc").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, int64(-500), records[0].Delta)
	assert.Equal(t, int64(500), records[1].Delta)
	assert.Equal(t, models.PointsTypeRefund, records[1].Type)

	purchased, err := HasPurchased(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, purchased)

	// The pair can purchase again after a refund
	_, err = PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)
}

func TestRefundTwice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 500, false)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	_, err = RefundPurchase(db, purchase.ID)
	require.NoError(t, err)

	_, err = RefundPurchase(db, purchase.ID)
	assert.ErrorIs(t, err, ErrAlreadyRefunded)
}

func TestRefundExemptPurchase(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, true)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	_, err = RefundPurchase(db, purchase.ID)
	require.NoError(t, err)

	// Nothing to credit back, no ledger entries at all
	var recordCount int64
	db.Model(&models.PointsRecord{}).Count(&recordCount)
	assert.Equal(t, int64(0), recordCount)

	var freshUser models.User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.Equal(t, uint(100), freshUser.Points)
}

func TestRefundFailedPurchase(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100, false)
	course := createTestCourse(t, db, 500)

	_, err := PurchaseCourse(db, user.ID, course.ID)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	var failed models.CoursePurchase
	require.NoError(t, db.Where("status = ?", models.PurchaseStatusFailed).First(&failed).Error)

	_, err = RefundPurchase(db, failed.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRefundMissingPurchase(t *testing.T) {
	db := setupTestDB(t)

	_, err := RefundPurchase(db, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefundFloorsStudentCount(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 500, false)
	course := createTestCourse(t, db, 500)

	purchase, err := PurchaseCourse(db, user.ID, course.ID)
	require.NoError(t, err)

	// Simulate external drift: counter already at zero
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).Update("student_count", 0).Error)

	_, err = RefundPurchase(db, purchase.ID)
	require.NoError(t, err)

	var freshCourse models.Course
	require.NoError(t, db.First(&freshCourse, course.ID).Error)
	assert.Equal(t, uint(0), freshCourse.StudentCount)
}
