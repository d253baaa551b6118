package utils

import (
	"fmt"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logMetrics logs metrics scheduler events with timestamp
func logMetrics(message string) {
	log.Printf("[METRICS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// snapshotCompanyMetrics writes one MetricsSnapshot row for the company,
// labeled with the current ISO week.
func snapshotCompanyMetrics(companyID uint, weekLabel string) error {
	db := database.Database.Db

	var customers []models.Customer
	if err := db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&customers).Error; err != nil {
		return err
	}

	snapshot := models.MetricsSnapshot{CompanyID: companyID, WeekLabel: weekLabel}
	customerIDs := make([]uint, len(customers))
	for i, cust := range customers {
		customerIDs[i] = cust.ID
		snapshot.Customers++
		if cust.Status == "ACTIVE" {
			snapshot.ActiveCustomers++
		} else {
			snapshot.InactiveCustomers++
		}
	}

	if len(customerIDs) > 0 {
		var memberships []models.CustomerMembership
		if err := db.Where("customer_id IN ? AND is_deleted = ?", customerIDs, false).Find(&memberships).Error; err != nil {
			return err
		}
		seen := make(map[uint]bool)
		for _, m := range memberships {
			if !seen[m.UserID] {
				seen[m.UserID] = true
				snapshot.Users++
			}
		}
	}

	var courses []courseModels.Course
	if err := db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&courses).Error; err != nil {
		return err
	}
	snapshot.Courses = int64(len(courses))

	for _, course := range courses {
		var moduleIDs []uint
		if err := db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}
		if len(moduleIDs) == 0 {
			continue
		}
		var progressRows []courseModels.CourseProgress
		if err := db.Where("course_id = ?", course.ID).Find(&progressRows).Error; err != nil {
			return err
		}
		for _, p := range progressRows {
			if courseModels.IsCourseComplete(moduleIDs, p.CompletedModuleIDs) {
				snapshot.CompletedCourses++
			}
		}
	}

	return db.Create(&snapshot).Error
}

// snapshotAllCompanies runs the weekly snapshot across every live company.
func snapshotAllCompanies() {
	now := time.Now()
	weekLabel := fmt.Sprintf("Week %d %d", ISOWeekNumber(now), isoYear(now))

	var companies []models.Company
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&companies).Error; err != nil {
		logMetrics("Error fetching companies: " + err.Error())
		return
	}

	for _, company := range companies {
		if err := snapshotCompanyMetrics(company.ID, weekLabel); err != nil {
			logMetrics(fmt.Sprintf("Error snapshotting company %d: %v", company.ID, err))
			continue
		}
	}
	logMetrics(fmt.Sprintf("Snapshot complete for %d companies (%s)", len(companies), weekLabel))
}

// InitializeMetricsScheduler starts the weekly dashboard snapshot job. It runs
// early Monday morning so each row captures the closing state of the prior week.
func InitializeMetricsScheduler() *cron.Cron {
	logMetrics("Initializing metrics scheduler...")

	c := cron.New()

	c.AddFunc("5 0 * * 1", func() {
		logMetrics("Running weekly metrics snapshot...")
		snapshotAllCompanies()
	})

	c.Start()

	logMetrics("Metrics scheduler started - runs Mondays at 00:05")
	return c
}
