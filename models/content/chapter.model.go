package content

import "gorm.io/gorm"

// Chapter is the top level of a course's content tree
type Chapter struct {
	gorm.Model
	DetailID    uint   `json:"detail_id" gorm:"index;not null"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Chapter order in course

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}
