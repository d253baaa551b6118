package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// QuizResult is the outcome of scoring one full module submission.
type QuizResult struct {
	CorrectCount   int      `json:"correct_count"`
	IncorrectIDs   []string `json:"incorrect_question_ids"`
	TotalQuestions int      `json:"total_questions"`
	Score          int      `json:"score"`
	Passed         bool     `json:"passed"`
}

// ScoreQuiz partitions questions into correct and incorrect against the
// recorded answers. Score is the rounded percentage, 0 for zero questions.
// Passing requires every answer correct and at least one question.
func ScoreQuiz(questions []courseModels.Question, answers map[string]string) QuizResult {
	result := QuizResult{TotalQuestions: len(questions)}
	for _, q := range questions {
		if q.IsCorrect(answers[q.ID]) {
			result.CorrectCount++
		} else {
			result.IncorrectIDs = append(result.IncorrectIDs, q.ID)
		}
	}
	if result.TotalQuestions > 0 {
		result.Score = int(math.Round(100 * float64(result.CorrectCount) / float64(result.TotalQuestions)))
		result.Passed = result.CorrectCount == result.TotalQuestions
	}
	return result
}

// GetModuleQuiz returns a module's questions with locale-resolved text and
// without the correct-answer ids.
func GetModuleQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	if !userHasCourse(userID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to you!", nil)
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var locales []map[string]string
	for _, q := range module.Questions {
		locales = append(locales, q.Title, q.Content)
	}
	locale := utils.ResolveLocale(utils.ContentLocales(locales...), c.Query("lang"), detectedLocale(c))

	questions := make([]fiber.Map, len(module.Questions))
	for i, q := range module.Questions {
		alternatives := make([]fiber.Map, len(q.Alternatives))
		for j, alt := range q.Alternatives {
			alternatives[j] = fiber.Map{
				"id":    alt.ID,
				"label": utils.LocalizedString(alt.Label, locale),
			}
		}
		questions[i] = fiber.Map{
			"id":           q.ID,
			"title":        utils.LocalizedString(q.Title, locale),
			"content":      utils.LocalizedString(q.Content, locale),
			"alternatives": alternatives,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"module_id": module.ID,
		"locale":    locale,
		"questions": questions,
	})
}

// SubmitQuiz scores a full module attempt. Every question must carry an
// answer. All answers correct marks the module complete through the progress
// tracker; course_complete is reported only on the attempt that finished the
// course. Incorrect answers leave completion untouched and allow a retry,
// which is simply the next submission.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers map[string]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !userHasCourse(userID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to you!", nil)
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if len(module.Questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module has no quiz!", nil)
	}

	// Sequential answering on the client guarantees a full answer map; the
	// server enforces the same invariant.
	for _, q := range module.Questions {
		if reqData.Answers[q.ID] == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All questions must be answered!", nil)
		}
	}

	result := ScoreQuiz(module.Questions, reqData.Answers)

	// Attempt number counts prior submissions for this user+module
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		UserID:         userID,
		CourseID:       uint(courseID),
		ModuleID:       uint(moduleID),
		Answers:        datatypes.NewJSONType(reqData.Answers),
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Score:          result.Score,
		Passed:         result.Passed,
		AttemptNumber:  int(attemptCount) + 1,
	}
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	courseComplete := false
	if result.Passed {
		if _, complete, err := applyModuleCompletion(userID, uint(courseID), uint(moduleID), true); err == nil {
			courseComplete = complete
		} else {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"result":          result,
		"attempt_number":  attempt.AttemptNumber,
		"module_complete": result.Passed,
		"course_complete": courseComplete,
		"can_retry":       !result.Passed,
	})
}
