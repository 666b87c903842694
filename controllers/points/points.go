package pointsController

import (
	"errors"

	"eduadmin/database"
	"eduadmin/middleware"
	"eduadmin/models"
	"eduadmin/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPointsBalance returns the user's current points balance
func GetPointsBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Points balance fetched!", fiber.Map{
		"balance": user.Points,
		"isVip":   user.IsVip,
	})
}

// GetPointsHistory returns the user's points ledger entries
func GetPointsHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	recordType := c.Query("type") // COURSE_PURCHASE, REFUND, ADMIN_ADJUST

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.PointsRecord{}).Where("user_id = ?", userId)

	if recordType != "" {
		query = query.Where("type = ?", recordType)
	}

	var total int64
	query.Count(&total)

	var records []models.PointsRecord
	if err := query.
		Order("record_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Points history fetched!", fiber.Map{
		"records":        records,
		"currentBalance": user.Points,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminAdjustPoints credits or debits a user's balance (Admin only)
func AdminAdjustPoints(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdjustPoints").(*struct {
		UserID    uint   `json:"userId"`
		Amount    uint   `json:"amount"`
		Direction string `json:"direction"`
		Reason    string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Balance update and ledger insert commit together
	var record *models.PointsRecord
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		if reqData.Direction == "CREDIT" {
			record, txErr = services.CreditPoints(tx, reqData.UserID, reqData.Amount,
				models.PointsTypeAdminAdjust, reqData.Reason, "admin", 0)
		} else {
			record, txErr = services.DebitPoints(tx, reqData.UserID, reqData.Amount,
				models.PointsTypeAdminAdjust, reqData.Reason, "admin", 0)
		}
		return txErr
	})

	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient points balance!", nil)
		case errors.Is(err, services.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to adjust points!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Points adjusted successfully!", fiber.Map{
		"recordId":      record.ID,
		"delta":         record.Delta,
		"balanceBefore": record.BalanceBefore,
		"balanceAfter":  record.BalanceAfter,
	})
}
