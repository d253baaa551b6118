package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// WeekBucket is one trailing-week column on the dashboard chart.
type WeekBucket struct {
	Label            string `json:"label"`
	NewCustomers     int    `json:"new_customers"`
	NewUsers         int    `json:"new_users"`
	CompletedCourses int    `json:"completed_courses"`
}

// DashboardMetrics is the full dashboard payload.
type DashboardMetrics struct {
	Customers         int64        `json:"customers"`
	ActiveCustomers   int64        `json:"active_customers"`
	InactiveCustomers int64        `json:"inactive_customers"`
	Users             int64        `json:"users"`
	Courses           int64        `json:"courses"`
	CompletedCourses  int64        `json:"completed_courses"`
	Weeks             []WeekBucket `json:"weeks"`
}

// emptyDashboard is the zeroed payload served when metric collection fails.
// The week skeleton is still populated so the chart axis renders.
func emptyDashboard(windows []utils.WeekWindow) DashboardMetrics {
	weeks := make([]WeekBucket, len(windows))
	for i, w := range windows {
		weeks[i] = WeekBucket{Label: w.Label}
	}
	return DashboardMetrics{Weeks: weeks}
}

// collectDashboard gathers totals and weekly buckets for one company.
func collectDashboard(companyID uint, windows []utils.WeekWindow) (DashboardMetrics, error) {
	db := database.Database.Db
	metrics := emptyDashboard(windows)

	var customers []models.Customer
	if err := db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&customers).Error; err != nil {
		return metrics, err
	}
	customerIDs := make([]uint, len(customers))
	for i, cust := range customers {
		customerIDs[i] = cust.ID
		metrics.Customers++
		if cust.Status == "ACTIVE" {
			metrics.ActiveCustomers++
		} else {
			metrics.InactiveCustomers++
		}
		if idx := utils.BucketIndex(windows, cust.CreatedAt); idx >= 0 {
			metrics.Weeks[idx].NewCustomers++
		}
	}

	// Users reached through the company's customers, deduplicated across
	// memberships. Signup week comes from the earliest membership.
	if len(customerIDs) > 0 {
		var memberships []models.CustomerMembership
		if err := db.Where("customer_id IN ? AND is_deleted = ?", customerIDs, false).Order("created_at asc").Find(&memberships).Error; err != nil {
			return metrics, err
		}
		seenUsers := make(map[uint]bool)
		for _, m := range memberships {
			if seenUsers[m.UserID] {
				continue
			}
			seenUsers[m.UserID] = true
			metrics.Users++
			if idx := utils.BucketIndex(windows, m.CreatedAt); idx >= 0 {
				metrics.Weeks[idx].NewUsers++
			}
		}
	}

	var courses []courseModels.Course
	if err := db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&courses).Error; err != nil {
		return metrics, err
	}
	metrics.Courses = int64(len(courses))

	// Course completion is derived from progress against the live module set,
	// never from a stored flag. The completing write's timestamp buckets it.
	for _, course := range courses {
		var moduleIDs []uint
		if err := db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Pluck("id", &moduleIDs).Error; err != nil {
			return metrics, err
		}
		if len(moduleIDs) == 0 {
			continue
		}

		var progressRows []courseModels.CourseProgress
		if err := db.Where("course_id = ?", course.ID).Find(&progressRows).Error; err != nil {
			return metrics, err
		}
		for _, p := range progressRows {
			if !courseModels.IsCourseComplete(moduleIDs, p.CompletedModuleIDs) {
				continue
			}
			metrics.CompletedCourses++
			if idx := utils.BucketIndex(windows, p.UpdatedAt); idx >= 0 {
				metrics.Weeks[idx].CompletedCourses++
			}
		}
	}

	return metrics, nil
}

// AdminGetDashboard serves the company dashboard. Metric collection is
// fail-soft: on any fetch error the response is still 200 with zeroed totals
// and the full week skeleton, so the admin page renders instead of erroring.
func AdminGetDashboard(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	windows := utils.WeekWindows(time.Now(), config.AppConfig.DashboardWeeks)

	metrics, err := collectDashboard(companyID, windows)
	if err != nil {
		log.Printf("Dashboard metrics failed for company %d: %v", companyID, err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", emptyDashboard(windows))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", metrics)
}
