package services

import (
	"errors"
	"time"

	"eduadmin/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseCourse buys course access with points. The debit, the ledger entry,
// the student-count bump, the enrollment row and the purchase record commit
// together or not at all. VIP users are exempt from payment and spend 0.
//
// An insufficient balance rolls the transaction back and leaves a FAILED
// purchase record behind; FAILED is a dead end, a later attempt starts fresh.
func PurchaseCourse(db *gorm.DB, userID, courseID uint) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user", userID)
			}
			return err
		}

		var course models.Course
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course", courseID)
			}
			return err
		}

		var existing models.CoursePurchase
		if err := tx.Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.PurchaseStatusSuccess).
			First(&existing).Error; err == nil {
			return ErrAlreadyPurchased
		}

		if course.PointsPrice == 0 {
			return ErrNotPurchasable
		}

		spent := uint(0)
		if !user.IsVip {
			if _, err := DebitPoints(tx, userID, course.PointsPrice,
				models.PointsTypeCoursePurchase, "Course purchase: "+course.Title, "course", course.ID); err != nil {
				return err
			}
			spent = course.PointsPrice
		}

		if err := tx.Model(&models.Course{}).
			Where("id = ?", course.ID).
			Update("student_count", gorm.Expr("student_count + 1")).Error; err != nil {
			return err
		}

		now := time.Now()
		enrollment := models.Enrollment{
			UserID:         userID,
			CourseID:       courseID,
			EnrollTime:     now,
			LastAccessTime: now,
			IsActive:       true,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		purchase = models.CoursePurchase{
			OrderNo:     uuid.NewString(),
			UserID:      userID,
			CourseID:    courseID,
			PointsSpent: spent,
			Status:      models.PurchaseStatusSuccess,
			Remark:      "Purchased with points: " + course.Title,
		}
		return tx.Create(&purchase).Error
	})

	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			// The dead-end record survives the rollback on purpose.
			failed := models.CoursePurchase{
				OrderNo:  uuid.NewString(),
				UserID:   userID,
				CourseID: courseID,
				Status:   models.PurchaseStatusFailed,
				Remark:   "Insufficient points balance",
			}
			db.Create(&failed)
		}
		return nil, err
	}
	return &purchase, nil
}

// RefundPurchase reverses a SUCCESS purchase: the spent points come back as a
// new opposite-signed ledger entry, the enrollment row is removed and the
// student count drops by one, floored at zero. Same all-or-nothing boundary
// as PurchaseCourse.
func RefundPurchase(db *gorm.DB, purchaseID uint) (*models.CoursePurchase, error) {
	var purchase models.CoursePurchase

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", purchaseID).First(&purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("purchase", purchaseID)
			}
			return err
		}

		if purchase.Status == models.PurchaseStatusRefunded {
			return ErrAlreadyRefunded
		}
		if purchase.Status != models.PurchaseStatusSuccess {
			return ErrInvalidState
		}

		if purchase.PointsSpent > 0 {
			if _, err := CreditPoints(tx, purchase.UserID, purchase.PointsSpent,
				models.PointsTypeRefund, "Refund: order "+purchase.OrderNo, "course", purchase.CourseID); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Course{}).
			Where("id = ? AND student_count > 0", purchase.CourseID).
			Update("student_count", gorm.Expr("student_count - 1")).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND course_id = ?", purchase.UserID, purchase.CourseID).
			Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}

		purchase.Status = models.PurchaseStatusRefunded
		purchase.Remark = "Refunded: order " + purchase.OrderNo
		return tx.Save(&purchase).Error
	})

	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// HasPurchased reports whether the pair holds a non-refunded SUCCESS purchase
func HasPurchased(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&models.CoursePurchase{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.PurchaseStatusSuccess).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
