package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SetModuleCompletion toggles one module in the caller's progress record.
// The write is idempotent: if the set content would not change, nothing is
// persisted and the current record is returned unchanged.
func SetModuleCompletion(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedCompletion").(*struct {
		Complete bool `json:"complete"`
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

	progress, courseComplete, err := applyModuleCompletion(userID, uint(courseID), uint(moduleID), reqData.Complete)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress":        progress,
		"course_complete": courseComplete,
	})
}

// GetProgress returns the caller's progress record for a course.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	if !userHasCourse(userID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to you!", nil)
	}

	var moduleIDs []uint
	database.Database.Db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Pluck("id", &moduleIDs)

	var progress courseModels.CourseProgress
	var completed []uint
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err == nil {
		completed = progress.CompletedModuleIDs
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completed_module_ids": completed,
		"module_count":         len(moduleIDs),
		"is_complete":          courseModels.IsCourseComplete(moduleIDs, completed),
	})
}

// applyModuleCompletion loads the progress record, applies the toggle and
// persists only when the set actually changed; the record is created lazily on
// the first completion write, so a no-op toggle touches nothing. It reports
// whether the write made the whole course complete when it was not before.
func applyModuleCompletion(userID, courseID, moduleID uint, complete bool) (*courseModels.CourseProgress, bool, error) {
	db := database.Database.Db

	var progress courseModels.CourseProgress
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, err
		}
		// Created lazily on first completion write
		progress = courseModels.CourseProgress{UserID: userID, CourseID: courseID}
	}

	next, changed := courseModels.ApplyCompletion(progress.CompletedModuleIDs, moduleID, complete)
	if !changed {
		return &progress, false, nil
	}

	var moduleIDs []uint
	db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Pluck("id", &moduleIDs)

	wasComplete := courseModels.IsCourseComplete(moduleIDs, progress.CompletedModuleIDs)

	progress.CompletedModuleIDs = datatypes.JSONSlice[uint](next)
	if err := db.Save(&progress).Error; err != nil {
		return nil, false, err
	}

	nowComplete := courseModels.IsCourseComplete(moduleIDs, next)
	return &progress, nowComplete && !wasComplete, nil
}
