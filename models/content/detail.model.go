package content

import "gorm.io/gorm"

// CourseDetail is the aggregate root of a course's content tree.
// One row per course, created lazily on the first content edit.
type CourseDetail struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"uniqueIndex;not null"`
	Outline    string `json:"outline" gorm:"type:text"`    // opaque long text
	Objectives string `json:"objectives" gorm:"type:text"` // opaque long text

	Chapters []Chapter `json:"chapters,omitempty" gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE"`
}
