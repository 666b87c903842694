package courseRoutes

import (
	controllers "eduadmin/controllers/course"
	"eduadmin/middleware"
	validators "eduadmin/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", controllers.AdminGetAllCourses)

	// Content tree root
	adminGroup.Get("/:id/detail", validators.CourseID(), controllers.AdminGetCourseDetail)
	adminGroup.Put("/:id/detail", validators.UpdateDetail(), controllers.AdminUpdateCourseDetail)

	// Chapter Management
	adminGroup.Post("/:id/chapter", validators.CreateChapter(), controllers.AdminCreateChapter)
	adminGroup.Get("/:id/chapters", validators.CourseID(), controllers.AdminListChapters)

	chapterGroup := app.Group("/admin/chapter", middleware.JWTMiddleware, middleware.AdminOnly)
	chapterGroup.Put("/:id", validators.UpdateChapter(), controllers.AdminUpdateChapter)
	chapterGroup.Delete("/:id", validators.ChapterID(), controllers.AdminDeleteChapter)
	chapterGroup.Post("/:id/section", validators.CreateSection(), controllers.AdminCreateSection)
	chapterGroup.Get("/:id/sections", validators.ChapterID(), controllers.AdminListSections)

	sectionGroup := app.Group("/admin/section", middleware.JWTMiddleware, middleware.AdminOnly)
	sectionGroup.Put("/:id", validators.UpdateSection(), controllers.AdminUpdateSection)
	sectionGroup.Delete("/:id", validators.SectionID(), controllers.AdminDeleteSection)
	sectionGroup.Post("/:id/subsection", validators.CreateSubSection(), controllers.AdminCreateSubSection)
	sectionGroup.Get("/:id/subsections", validators.SectionID(), controllers.AdminListSubSections)

	subSectionGroup := app.Group("/admin/subsection", middleware.JWTMiddleware, middleware.AdminOnly)
	subSectionGroup.Put("/:id", validators.UpdateSubSection(), controllers.AdminUpdateSubSection)
	subSectionGroup.Delete("/:id", validators.SubSectionID(), controllers.AdminDeleteSubSection)

	// Purchases & Enrollment
	purchaseGroup := app.Group("/admin/purchase", middleware.JWTMiddleware, middleware.AdminOnly)
	purchaseGroup.Get("/list", controllers.AdminGetPurchases)
	purchaseGroup.Post("/:id/refund", validators.PurchaseID(), controllers.AdminRefundPurchase)

	adminGroup.Get("/:id/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)
}
