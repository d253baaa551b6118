package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseCompletion is a denormalized snapshot proving a user finished a course,
// written exactly once on first successful diploma issuance. CompletedAt is
// fixed at first-issuance time and reused verbatim on every reissue.
type CourseCompletion struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	CustomerID      uint      `json:"customer_id" gorm:"index;not null"`
	ParticipantName string    `json:"participant_name"`
	CourseTitle     string    `json:"course_title"`
	CustomerName    string    `json:"customer_name"`
	CompletedAt     time.Time `json:"completed_at"`
}
