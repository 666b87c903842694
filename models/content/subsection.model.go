package content

import "gorm.io/gorm"

// SubSection is the smallest content unit, nested under a section
type SubSection struct {
	gorm.Model
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Content     string `json:"content" gorm:"type:text"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"`
	ResourceURL string `json:"resource_url"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Order within section
}
