package models

import "gorm.io/gorm"

// MetricsSnapshot is a weekly persisted copy of the dashboard totals, written
// by the metrics cron job so week-over-week history survives record deletion.
type MetricsSnapshot struct {
	gorm.Model
	CompanyID         uint   `json:"company_id" gorm:"index"`
	WeekLabel         string `json:"week_label" gorm:"index"`
	Customers         int64  `json:"customers"`
	ActiveCustomers   int64  `json:"active_customers"`
	InactiveCustomers int64  `json:"inactive_customers"`
	Users             int64  `json:"users"`
	Courses           int64  `json:"courses"`
	CompletedCourses  int64  `json:"completed_courses"`
}
