package courseRoutes

import (
	controllers "eduadmin/controllers/course"
	"eduadmin/middleware"
	validators "eduadmin/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	courseGroup.Get("/list", controllers.GetActiveCourses)
	courseGroup.Get("/:id/chapters", validators.CourseID(), controllers.GetCourseChapters)
	courseGroup.Post("/:id/purchase", validators.CourseID(), controllers.PurchaseCourse)
	courseGroup.Get("/:id/purchased", validators.CourseID(), controllers.HasPurchasedCourse)
	courseGroup.Get("/my", controllers.GetMyCourses)
	courseGroup.Post("/:id/access", validators.CourseID(), controllers.TouchEnrollment)

	enrollmentGroup := app.Group("/enrollment", middleware.JWTMiddleware)
	enrollmentGroup.Get("/list", controllers.GetEnrollments)
	enrollmentGroup.Delete("/:id", validators.CourseID(), controllers.Unenroll)
}
