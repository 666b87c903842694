package courseController

import (
	"errors"

	"eduadmin/database"
	"eduadmin/middleware"
	"eduadmin/models/content"
	"eduadmin/services"

	"github.com/gofiber/fiber/v2"
)

// nodeErrorResponse maps content tree service errors to HTTP replies
func nodeErrorResponse(c *fiber.Ctx, err error, failMessage string) error {
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, nf.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, failMessage, nil)
}

// AdminGetCourseDetail returns the content tree root, creating it on first use
func AdminGetCourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	detail, err := services.GetOrCreateDetail(database.Database.Db, uint(courseID))
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to fetch course detail!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course detail fetched successfully!", detail)
}

// AdminUpdateCourseDetail overwrites the outline and objectives
func AdminUpdateCourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedDetail").(*struct {
		Outline    string `json:"outline"`
		Objectives string `json:"objectives"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	detail, err := services.UpdateDetail(database.Database.Db, uint(courseID), reqData.Outline, reqData.Objectives)
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to update course detail!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course detail updated successfully!", detail)
}

// AdminCreateChapter creates a new chapter in a course
func AdminCreateChapter(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedChapter").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := content.Chapter{
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := services.AddChapter(database.Database.Db, uint(courseID), &chapter); err != nil {
		return nodeErrorResponse(c, err, "Failed to create chapter!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter updates an existing chapter
func AdminUpdateChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	reqData, ok := c.Locals("validatedChapterUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter, err := services.UpdateChapter(database.Database.Db, uint(chapterID), services.ChapterPatch{
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	})
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to update chapter!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter deletes a chapter and its whole subtree
func AdminDeleteChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	if err := services.DeleteChapter(database.Database.Db, uint(chapterID)); err != nil {
		return nodeErrorResponse(c, err, "Failed to delete chapter!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminListChapters lists a course's chapters in display order
func AdminListChapters(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	chapters, err := services.ListChapters(database.Database.Db, uint(courseID))
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to fetch chapters!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

// AdminCreateSection creates a new section in a chapter
func AdminCreateSection(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	reqData, ok := c.Locals("validatedSection").(*struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		Content       string `json:"content"`
		MediaURL      string `json:"media_url"`
		ContentType   string `json:"content_type"`
		IsFreePreview bool   `json:"is_free_preview"`
		OrderIndex    int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section := content.Section{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Content:       reqData.Content,
		MediaURL:      reqData.MediaURL,
		ContentType:   reqData.ContentType,
		IsFreePreview: reqData.IsFreePreview,
		OrderIndex:    reqData.OrderIndex,
	}

	if err := services.AddSection(database.Database.Db, uint(chapterID), &section); err != nil {
		return nodeErrorResponse(c, err, "Failed to create section!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection updates an existing section
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedSectionUpdate").(*struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		Content       string `json:"content"`
		MediaURL      string `json:"media_url"`
		ContentType   string `json:"content_type"`
		IsFreePreview *bool  `json:"is_free_preview"`
		OrderIndex    int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section, err := services.UpdateSection(database.Database.Db, uint(sectionID), services.SectionPatch{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Content:       reqData.Content,
		MediaURL:      reqData.MediaURL,
		ContentType:   reqData.ContentType,
		IsFreePreview: reqData.IsFreePreview,
		OrderIndex:    reqData.OrderIndex,
	})
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to update section!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection deletes a section and its subsections
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	if err := services.DeleteSection(database.Database.Db, uint(sectionID)); err != nil {
		return nodeErrorResponse(c, err, "Failed to delete section!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// AdminListSections lists a chapter's sections in display order
func AdminListSections(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	sections, err := services.ListSections(database.Database.Db, uint(chapterID))
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to fetch sections!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", sections)
}

// AdminCreateSubSection creates a new subsection in a section
func AdminCreateSubSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedSubSection").(*struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		ContentType string `json:"content_type"`
		ResourceURL string `json:"resource_url"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sub := content.SubSection{
		Title:       reqData.Title,
		Content:     reqData.Content,
		ContentType: reqData.ContentType,
		ResourceURL: reqData.ResourceURL,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := services.AddSubSection(database.Database.Db, uint(sectionID), &sub); err != nil {
		return nodeErrorResponse(c, err, "Failed to create subsection!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "SubSection created successfully!", sub)
}

// AdminUpdateSubSection updates an existing subsection
func AdminUpdateSubSection(c *fiber.Ctx) error {
	subSectionID := c.Locals("subSectionID").(int)

	reqData, ok := c.Locals("validatedSubSectionUpdate").(*struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		ContentType string `json:"content_type"`
		ResourceURL string `json:"resource_url"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sub, err := services.UpdateSubSection(database.Database.Db, uint(subSectionID), services.SubSectionPatch{
		Title:       reqData.Title,
		Content:     reqData.Content,
		ContentType: reqData.ContentType,
		ResourceURL: reqData.ResourceURL,
		OrderIndex:  reqData.OrderIndex,
	})
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to update subsection!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SubSection updated successfully!", sub)
}

// AdminDeleteSubSection deletes a single subsection
func AdminDeleteSubSection(c *fiber.Ctx) error {
	subSectionID := c.Locals("subSectionID").(int)

	if err := services.DeleteSubSection(database.Database.Db, uint(subSectionID)); err != nil {
		return nodeErrorResponse(c, err, "Failed to delete subsection!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SubSection deleted successfully!", nil)
}

// GetCourseChapters lists an active course's chapters for users
func GetCourseChapters(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	chapters, err := services.ListChapters(database.Database.Db, uint(courseID))
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to fetch chapters!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

// AdminListSubSections lists a section's subsections in display order
func AdminListSubSections(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	subs, err := services.ListSubSections(database.Database.Db, uint(sectionID))
	if err != nil {
		return nodeErrorResponse(c, err, "Failed to fetch subsections!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SubSections fetched successfully!", subs)
}
