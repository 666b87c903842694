package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course they hold access to
type Enrollment struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	CourseID       uint      `json:"course_id" gorm:"index;not null"`
	EnrollTime     time.Time `json:"enroll_time" gorm:"not null"`
	LastAccessTime time.Time `json:"last_access_time"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
