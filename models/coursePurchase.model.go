package models

import "gorm.io/gorm"

// PurchaseStatus defines the status of a course points purchase
type PurchaseStatus string

const (
	PurchaseStatusSuccess  PurchaseStatus = "SUCCESS"
	PurchaseStatusFailed   PurchaseStatus = "FAILED"
	PurchaseStatusRefunded PurchaseStatus = "REFUNDED"
)

// CoursePurchase records one points purchase attempt for a (user, course) pair.
// A user holds at most one non-refunded SUCCESS purchase per course.
type CoursePurchase struct {
	gorm.Model
	OrderNo     string         `gorm:"type:varchar(64);uniqueIndex" json:"orderNo"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	CourseID    uint           `gorm:"not null;index" json:"courseId"`
	PointsSpent uint           `gorm:"default:0" json:"pointsSpent"` // 0 for exempt users
	Status      PurchaseStatus `gorm:"type:varchar(20);not null" json:"status"`
	Remark      string         `gorm:"type:text" json:"remark"`

	// Relations - omit in JSON by default
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

func (CoursePurchase) TableName() string {
	return "course_purchases"
}
