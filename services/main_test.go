package services

import (
	"testing"

	"eduadmin/models"
	"eduadmin/models/content"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.PointsRecord{},
		&models.CoursePurchase{},
		&models.Enrollment{},
		&content.CourseDetail{},
		&content.Chapter{},
		&content.Section{},
		&content.SubSection{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, points uint, vip bool) models.User {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "hashed",
		Points:   points,
		IsVip:    vip,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, price uint) models.Course {
	t.Helper()

	course := models.Course{
		Title:       "Test Course",
		Status:      "ACTIVE",
		PointsPrice: price,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
