package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt records one full submission of a module's quiz. A retry is
// simply the next submission; AttemptNumber increments per user+module.
type QuizAttempt struct {
	gorm.Model
	UserID         uint                                  `json:"user_id" gorm:"index;not null"`
	CourseID       uint                                  `json:"course_id" gorm:"index;not null"`
	ModuleID       uint                                  `json:"module_id" gorm:"index;not null"`
	Answers        datatypes.JSONType[map[string]string] `json:"answers"` // question id → chosen alternative id
	CorrectCount   int                                   `json:"correct_count"`
	TotalQuestions int                                   `json:"total_questions"`
	Score          int                                   `json:"score"` // rounded percentage
	Passed         bool                                  `json:"passed" gorm:"default:false"`
	AttemptNumber  int                                   `json:"attempt_number" gorm:"default:1"`
	IsDeleted      bool                                  `gorm:"default:false"`
}
