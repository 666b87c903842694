package content

import "gorm.io/gorm"

// ContentType tags what a section or subsection body holds
const (
	ContentTypeVideo    = "VIDEO"
	ContentTypeDocument = "DOCUMENT"
	ContentTypePDF      = "PDF"
	ContentTypeText     = "TEXT"
)

// Section is a lesson inside a chapter
type Section struct {
	gorm.Model
	ChapterID     uint   `json:"chapter_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Content       string `json:"content" gorm:"type:text"`
	MediaURL      string `json:"media_url"`
	ContentType   string `json:"content_type" gorm:"default:'TEXT'"` // VIDEO, DOCUMENT, PDF, TEXT
	IsFreePreview bool   `json:"is_free_preview" gorm:"default:false"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"` // Order within chapter

	SubSections []SubSection `json:"sub_sections,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}
