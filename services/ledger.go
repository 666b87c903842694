package services

import (
	"errors"
	"time"

	"eduadmin/models"

	"gorm.io/gorm"
)

// The ledger keeps User.Points and the points_records table in sync: every
// balance change applies the user-row update and appends exactly one record
// on the same handle. Callers pass a transaction when the change is part of a
// larger unit (course purchase, refund). Records are never updated or
// deleted; reversing a change means appending an opposite-signed record.

// CreditPoints adds amount to the user's balance and appends a ledger entry
func CreditPoints(db *gorm.DB, userID uint, amount uint, pType models.PointsType, reason, refType string, refID uint) (*models.PointsRecord, error) {
	if amount == 0 {
		return nil, ErrInvalidAmount
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", userID)
		}
		return nil, err
	}

	res := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}

	record := models.PointsRecord{
		UserID:        userID,
		Delta:         int64(amount),
		BalanceBefore: user.Points,
		BalanceAfter:  user.Points + amount,
		Type:          pType,
		Reason:        reason,
		ReferenceType: refType,
		ReferenceID:   refID,
		RecordDate:    time.Now(),
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DebitPoints subtracts amount from the user's balance and appends a ledger
// entry. The decrement is a single conditional UPDATE so two concurrent
// debits cannot both pass the balance check; zero rows affected means the
// balance was short.
func DebitPoints(db *gorm.DB, userID uint, amount uint, pType models.PointsType, reason, refType string, refID uint) (*models.PointsRecord, error) {
	if amount == 0 {
		return nil, ErrInvalidAmount
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", userID)
		}
		return nil, err
	}

	res := db.Model(&models.User{}).
		Where("id = ? AND points >= ?", userID, amount).
		Update("points", gorm.Expr("points - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientBalance
	}

	record := models.PointsRecord{
		UserID:        userID,
		Delta:         -int64(amount),
		BalanceBefore: user.Points,
		BalanceAfter:  user.Points - amount,
		Type:          pType,
		Reason:        reason,
		ReferenceType: refType,
		ReferenceID:   refID,
		RecordDate:    time.Now(),
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
