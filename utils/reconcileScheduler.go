package utils

import (
	"fmt"
	"log"
	"time"

	"eduadmin/config"
	"eduadmin/database"
	"eduadmin/models"

	"github.com/robfig/cron/v3"
)

// logReconcile logs reconcile events with timestamp
func logReconcile(message string) {
	log.Printf("[ENROLL-RECONCILE %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileStudentCounts recomputes course.student_count from the active
// enrollment rows. The counters are maintained transactionally by the
// purchase flow; this job only repairs drift and reports it.
func reconcileStudentCounts() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logReconcile("Error fetching courses: " + err.Error())
		return
	}

	repaired := 0
	for _, course := range courses {
		var actual int64
		if err := db.Model(&models.Enrollment{}).
			Where("course_id = ? AND is_active = ?", course.ID, true).
			Count(&actual).Error; err != nil {
			logReconcile("Error counting enrollments: " + err.Error())
			continue
		}

		if uint(actual) == course.StudentCount {
			continue
		}

		logReconcile(fmt.Sprintf("Course %d student_count drift: stored %d, actual %d", course.ID, course.StudentCount, actual))
		if err := db.Model(&models.Course{}).
			Where("id = ?", course.ID).
			Update("student_count", actual).Error; err != nil {
			logReconcile("Error repairing count: " + err.Error())
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logReconcile(fmt.Sprintf("Repaired %d course counters", repaired))
	}
}

// StartReconcileScheduler runs the enrollment counter reconcile job on the
// configured cron spec
func StartReconcileScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReconcileCron, reconcileStudentCounts); err != nil {
		log.Fatalf("Failed to schedule reconcile job: %v", err)
	}

	c.Start()
	logReconcile("Scheduler started with spec " + config.AppConfig.ReconcileCron)
	return c
}
