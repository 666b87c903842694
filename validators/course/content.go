package courseValidator

import (
	"strings"

	"eduadmin/middleware"
	"eduadmin/models/content"

	"github.com/gofiber/fiber/v2"
)

func isValidContentType(t string) bool {
	switch t {
	case content.ContentTypeVideo, content.ContentTypeDocument, content.ContentTypePDF, content.ContentTypeText:
		return true
	}
	return false
}

// ChapterID validates the chapter id route parameter
func ChapterID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid chapter ID is required in the URL!", nil)
		}
		c.Locals("chapterID", id)
		return c.Next()
	}
}

// SectionID validates the section id route parameter
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid section ID is required in the URL!", nil)
		}
		c.Locals("sectionID", id)
		return c.Next()
	}
}

// SubSectionID validates the subsection id route parameter
func SubSectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid subsection ID is required in the URL!", nil)
		}
		c.Locals("subSectionID", id)
		return c.Next()
	}
}

// UpdateDetail validates the course detail update request
func UpdateDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Outline    string `json:"outline"`
			Objectives string `json:"objectives"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("courseID", id)
		c.Locals("validatedDetail", reqData)
		return c.Next()
	}
}

// CreateChapter validates the chapter creation request
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", id)
		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// UpdateChapter validates the chapter update request
func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid chapter ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		c.Locals("chapterID", id)
		c.Locals("validatedChapterUpdate", reqData)
		return c.Next()
	}
}

// CreateSection validates the section creation request
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid chapter ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			Content       string `json:"content"`
			MediaURL      string `json:"media_url"`
			ContentType   string `json:"content_type"`
			IsFreePreview bool   `json:"is_free_preview"`
			OrderIndex    int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.TrimSpace(strings.ToUpper(reqData.ContentType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ContentType != "" && !isValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be one of VIDEO, DOCUMENT, PDF, TEXT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("chapterID", id)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validates the section update request
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid section ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			Content       string `json:"content"`
			MediaURL      string `json:"media_url"`
			ContentType   string `json:"content_type"`
			IsFreePreview *bool  `json:"is_free_preview"`
			OrderIndex    int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.TrimSpace(strings.ToUpper(reqData.ContentType))

		if reqData.ContentType != "" && !isValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be one of VIDEO, DOCUMENT, PDF, TEXT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", id)
		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// CreateSubSection validates the subsection creation request
func CreateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid section ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			ContentType string `json:"content_type"`
			ResourceURL string `json:"resource_url"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.TrimSpace(strings.ToUpper(reqData.ContentType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ContentType != "" && !isValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be one of VIDEO, DOCUMENT, PDF, TEXT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", id)
		c.Locals("validatedSubSection", reqData)
		return c.Next()
	}
}

// UpdateSubSection validates the subsection update request
func UpdateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid subsection ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			ContentType string `json:"content_type"`
			ResourceURL string `json:"resource_url"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.TrimSpace(strings.ToUpper(reqData.ContentType))

		if reqData.ContentType != "" && !isValidContentType(reqData.ContentType) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content_type": "Content type must be one of VIDEO, DOCUMENT, PDF, TEXT!",
			})
		}

		c.Locals("subSectionID", id)
		c.Locals("validatedSubSectionUpdate", reqData)
		return c.Next()
	}
}
