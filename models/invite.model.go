package models

import (
	"time"

	"gorm.io/gorm"
)

// CourseInvite lets a customer distribute signup links for one of its assigned
// courses. New accounts are created through it; existing accounts redeem it to
// get the course added to their membership.
type CourseInvite struct {
	gorm.Model
	Code       string     `json:"code" gorm:"uniqueIndex;not null"`
	CustomerID uint       `json:"customer_id" gorm:"index;not null"`
	CourseID   uint       `json:"course_id" gorm:"index;not null"`
	Email      string     `json:"email"` // optional address the invite was mailed to
	ConsumedAt *time.Time `json:"consumed_at"`
	IsDeleted  bool       `gorm:"default:false"`
}
