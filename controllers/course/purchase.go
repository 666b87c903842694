package courseController

import (
	"errors"

	"eduadmin/database"
	"eduadmin/middleware"
	"eduadmin/models"
	"eduadmin/services"
	"eduadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// PurchaseCourse buys course access with the user's points balance
func PurchaseCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	purchase, err := services.PurchaseCourse(database.Database.Db, userId, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		case errors.Is(err, services.ErrAlreadyPurchased):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already purchased!", nil)
		case errors.Is(err, services.ErrNotPurchasable):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not purchasable with points!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient points balance!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase course!", nil)
		}
	}

	// Send purchase receipt, fire and forget
	go utils.SendPurchaseEmail(user.Email, user.Name, purchase.Remark, purchase.PointsSpent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course purchased successfully!", purchase)
}

// HasPurchasedCourse reports whether the user holds the course
func HasPurchasedCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	purchased, err := services.HasPurchased(database.Database.Db, userId, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase status fetched!", fiber.Map{
		"purchased": purchased,
	})
}

// GetMyCourses lists the user's purchases with course data
func GetMyCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var purchases []models.CoursePurchase
	if err := database.Database.Db.
		Where("user_id = ? AND status = ?", userId, models.PurchaseStatusSuccess).
		Preload("Course").
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", purchases)
}

// AdminGetPurchases lists purchase records with pagination (Admin only)
func AdminGetPurchases(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status") // SUCCESS, FAILED, REFUNDED

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.CoursePurchase{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var purchases []models.CoursePurchase
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", fiber.Map{
		"purchases": purchases,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminRefundPurchase reverses a successful purchase (Admin only)
func AdminRefundPurchase(c *fiber.Ctx) error {
	purchaseID := c.Locals("purchaseID").(int)

	purchase, err := services.RefundPurchase(database.Database.Db, uint(purchaseID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
		case errors.Is(err, services.ErrAlreadyRefunded):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Purchase already refunded!", nil)
		case errors.Is(err, services.ErrInvalidState):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Purchase is not refundable!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refund purchase!", nil)
		}
	}

	// Notify the user, fire and forget
	var user models.User
	if err := database.Database.Db.Where("id = ?", purchase.UserID).First(&user).Error; err == nil {
		go utils.SendRefundEmail(user.Email, user.Name, purchase.OrderNo, purchase.PointsSpent)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase refunded successfully!", purchase)
}
