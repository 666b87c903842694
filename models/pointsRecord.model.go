package models

import (
	"time"

	"gorm.io/gorm"
)

// PointsType defines the reason class of a points ledger entry
type PointsType string

const (
	PointsTypeCoursePurchase PointsType = "COURSE_PURCHASE"
	PointsTypeRefund         PointsType = "REFUND"
	PointsTypeAdminAdjust    PointsType = "ADMIN_ADJUST"
)

// PointsRecord is one immutable ledger entry for a user's balance change.
// Rows are append-only: corrections are written as new, opposite-signed entries.
type PointsRecord struct {
	gorm.Model
	UserID        uint       `gorm:"not null;index" json:"userId"`
	Delta         int64      `gorm:"not null" json:"delta"` // signed change applied to the balance
	BalanceBefore uint       `gorm:"not null" json:"balanceBefore"`
	BalanceAfter  uint       `gorm:"not null" json:"balanceAfter"`
	Type          PointsType `gorm:"type:varchar(50);not null" json:"type"`
	Reason        string     `gorm:"type:text" json:"reason"`

	// Reference details (course purchase/refund context)
	ReferenceType string `gorm:"type:varchar(50)" json:"referenceType"` // course, admin
	ReferenceID   uint   `gorm:"default:0" json:"referenceId"`

	RecordDate time.Time `gorm:"not null" json:"recordDate"`

	// Relations - omit in JSON by default (only load when needed)
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PointsRecord) TableName() string {
	return "points_records"
}
