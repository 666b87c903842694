package pointsRoutes

import (
	pointsController "eduadmin/controllers/points"
	"eduadmin/middleware"
	pointsValidator "eduadmin/validators/points"

	"github.com/gofiber/fiber/v2"
)

func SetupPointsRoutes(app *fiber.App) {
	pointsGroup := app.Group("/points")

	// User routes
	pointsGroup.Get("/balance", middleware.JWTMiddleware, pointsController.GetPointsBalance)
	pointsGroup.Get("/history", middleware.JWTMiddleware, pointsController.GetPointsHistory)

	// Admin routes
	adminGroup := pointsGroup.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/adjust", pointsValidator.AdjustPoints(), pointsController.AdminAdjustPoints)
}
