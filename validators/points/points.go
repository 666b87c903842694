package pointsValidator

import (
	"strings"

	"eduadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// AdjustPoints validates the admin points adjustment request
func AdjustPoints() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID    uint   `json:"userId"`
			Amount    uint   `json:"amount"`
			Direction string `json:"direction"`
			Reason    string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Direction = strings.TrimSpace(strings.ToUpper(reqData.Direction))
		reqData.Reason = strings.TrimSpace(reqData.Reason)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.Amount == 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Direction != "CREDIT" && reqData.Direction != "DEBIT" {
			errors["direction"] = "Direction must be CREDIT or DEBIT!"
		}
		if reqData.Reason == "" {
			errors["reason"] = "Reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdjustPoints", reqData)
		return c.Next()
	}
}
