package services

import (
	"errors"

	"eduadmin/models"
	"eduadmin/models/content"

	"gorm.io/gorm"
)

// ChapterPatch carries the mutable chapter fields. Empty strings and
// non-positive order indices leave the stored value untouched.
type ChapterPatch struct {
	Title       string
	Description string
	OrderIndex  int
}

// SectionPatch carries the mutable section fields.
type SectionPatch struct {
	Title         string
	Description   string
	Content       string
	MediaURL      string
	ContentType   string
	IsFreePreview *bool
	OrderIndex    int
}

// SubSectionPatch carries the mutable subsection fields.
type SubSectionPatch struct {
	Title       string
	Content     string
	ContentType string
	ResourceURL string
	OrderIndex  int
}

// GetOrCreateDetail returns the content tree root for a course, creating an
// empty one on first use. Fails if the course itself does not exist.
func GetOrCreateDetail(db *gorm.DB, courseID uint) (*content.CourseDetail, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course", courseID)
		}
		return nil, err
	}

	var detail content.CourseDetail
	err := db.Where("course_id = ?", courseID).First(&detail).Error
	if err == nil {
		return &detail, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	detail = content.CourseDetail{CourseID: courseID}
	if err := db.Create(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateDetail overwrites the free-form detail fields
func UpdateDetail(db *gorm.DB, courseID uint, outline, objectives string) (*content.CourseDetail, error) {
	detail, err := GetOrCreateDetail(db, courseID)
	if err != nil {
		return nil, err
	}

	detail.Outline = outline
	detail.Objectives = objectives
	if err := db.Save(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

// DeleteDetail removes a course's whole content tree. Called when the owning
// course is deleted; missing detail is not an error.
func DeleteDetail(db *gorm.DB, courseID uint) error {
	var detail content.CourseDetail
	if err := db.Where("course_id = ?", courseID).First(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&content.SubSection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&content.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("detail_id = ?", detail.ID).Delete(&content.Chapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&detail).Error
	})
}

// AddChapter appends a chapter to a course's content tree, creating the tree
// root if this is the first edit. A non-positive order index means append.
func AddChapter(db *gorm.DB, courseID uint, chapter *content.Chapter) error {
	detail, err := GetOrCreateDetail(db, courseID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		chapter.DetailID = detail.ID
		chapter.CourseID = courseID
		if chapter.OrderIndex <= 0 {
			chapter.OrderIndex = NextOrderIndex(tx, &content.Chapter{}, "detail_id", detail.ID)
		}
		return tx.Create(chapter).Error
	})
}

// UpdateChapter overwrites the mutable chapter fields
func UpdateChapter(db *gorm.DB, chapterID uint, patch ChapterPatch) (*content.Chapter, error) {
	var chapter content.Chapter
	if err := db.Where("id = ?", chapterID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("chapter", chapterID)
		}
		return nil, err
	}

	if patch.Title != "" {
		chapter.Title = patch.Title
	}
	if patch.Description != "" {
		chapter.Description = patch.Description
	}
	if patch.OrderIndex > 0 {
		chapter.OrderIndex = patch.OrderIndex
	}

	if err := db.Save(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteChapter removes a chapter and its whole subtree in one transaction
func DeleteChapter(db *gorm.DB, chapterID uint) error {
	var chapter content.Chapter
	if err := db.Where("id = ?", chapterID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("chapter", chapterID)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&content.Section{}).Where("chapter_id = ?", chapterID).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).Delete(&content.SubSection{}).Error; err != nil {
				return err
			}
			if err := tx.Where("chapter_id = ?", chapterID).Delete(&content.Section{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&chapter).Error
	})
}

// ListChapters returns a course's chapters in display order
func ListChapters(db *gorm.DB, courseID uint) ([]content.Chapter, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course", courseID)
		}
		return nil, err
	}

	var chapters []content.Chapter
	if err := db.Where("course_id = ?", courseID).Order(siblingOrder).Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

// AddSection appends a section under a chapter
func AddSection(db *gorm.DB, chapterID uint, section *content.Section) error {
	var chapter content.Chapter
	if err := db.Where("id = ?", chapterID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("chapter", chapterID)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		section.ChapterID = chapter.ID
		section.CourseID = chapter.CourseID
		if section.ContentType == "" {
			section.ContentType = content.ContentTypeText
		}
		if section.OrderIndex <= 0 {
			section.OrderIndex = NextOrderIndex(tx, &content.Section{}, "chapter_id", chapter.ID)
		}
		return tx.Create(section).Error
	})
}

// UpdateSection overwrites the mutable section fields
func UpdateSection(db *gorm.DB, sectionID uint, patch SectionPatch) (*content.Section, error) {
	var section content.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("section", sectionID)
		}
		return nil, err
	}

	if patch.Title != "" {
		section.Title = patch.Title
	}
	if patch.Description != "" {
		section.Description = patch.Description
	}
	if patch.Content != "" {
		section.Content = patch.Content
	}
	if patch.MediaURL != "" {
		section.MediaURL = patch.MediaURL
	}
	if patch.ContentType != "" {
		section.ContentType = patch.ContentType
	}
	if patch.IsFreePreview != nil {
		section.IsFreePreview = *patch.IsFreePreview
	}
	if patch.OrderIndex > 0 {
		section.OrderIndex = patch.OrderIndex
	}

	if err := db.Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection removes a section and its subsections in one transaction
func DeleteSection(db *gorm.DB, sectionID uint) error {
	var section content.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("section", sectionID)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionID).Delete(&content.SubSection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
}

// ListSections returns a chapter's sections in display order
func ListSections(db *gorm.DB, chapterID uint) ([]content.Section, error) {
	var chapter content.Chapter
	if err := db.Where("id = ?", chapterID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("chapter", chapterID)
		}
		return nil, err
	}

	var sections []content.Section
	if err := db.Where("chapter_id = ?", chapterID).Order(siblingOrder).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// AddSubSection appends a subsection under a section
func AddSubSection(db *gorm.DB, sectionID uint, sub *content.SubSection) error {
	var section content.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("section", sectionID)
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		sub.SectionID = section.ID
		sub.CourseID = section.CourseID
		if sub.ContentType == "" {
			sub.ContentType = content.ContentTypeText
		}
		if sub.OrderIndex <= 0 {
			sub.OrderIndex = NextOrderIndex(tx, &content.SubSection{}, "section_id", section.ID)
		}
		return tx.Create(sub).Error
	})
}

// UpdateSubSection overwrites the mutable subsection fields
func UpdateSubSection(db *gorm.DB, subSectionID uint, patch SubSectionPatch) (*content.SubSection, error) {
	var sub content.SubSection
	if err := db.Where("id = ?", subSectionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("subsection", subSectionID)
		}
		return nil, err
	}

	if patch.Title != "" {
		sub.Title = patch.Title
	}
	if patch.Content != "" {
		sub.Content = patch.Content
	}
	if patch.ContentType != "" {
		sub.ContentType = patch.ContentType
	}
	if patch.ResourceURL != "" {
		sub.ResourceURL = patch.ResourceURL
	}
	if patch.OrderIndex > 0 {
		sub.OrderIndex = patch.OrderIndex
	}

	if err := db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubSection removes a single subsection
func DeleteSubSection(db *gorm.DB, subSectionID uint) error {
	var sub content.SubSection
	if err := db.Where("id = ?", subSectionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("subsection", subSectionID)
		}
		return err
	}
	return db.Delete(&sub).Error
}

// ListSubSections returns a section's subsections in display order
func ListSubSections(db *gorm.DB, sectionID uint) ([]content.SubSection, error) {
	var section content.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("section", sectionID)
		}
		return nil, err
	}

	var subs []content.SubSection
	if err := db.Where("section_id = ?", sectionID).Order(siblingOrder).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
