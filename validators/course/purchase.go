package courseValidator

import (
	"eduadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// PurchaseID validates the purchase id route parameter
func PurchaseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid purchase ID is required in the URL!", nil)
		}
		c.Locals("purchaseID", id)
		return c.Next()
	}
}
