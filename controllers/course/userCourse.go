package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// detectedLocale extracts the client language from the Accept-Language header.
func detectedLocale(c *fiber.Ctx) string {
	header := c.Get("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.Split(first, ";")[0]
}

// assignedCourseIDs collects the course ids visible to the user across all
// customer memberships.
func assignedCourseIDs(userID uint) []uint {
	var memberships []models.CustomerMembership
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&memberships)

	var ids []uint
	seen := make(map[uint]bool)
	for _, m := range memberships {
		for _, id := range m.AssignedCourseIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// resolveCourseLocale picks the render locale from the locales present across
// the course and all its modules.
func resolveCourseLocale(c *fiber.Ctx, course *courseModels.Course, modules []courseModels.CourseModule) string {
	maps := []map[string]string{course.Title.Data(), course.Description.Data()}
	for i := range modules {
		maps = append(maps, modules[i].Title.Data(), modules[i].Summary.Data(), modules[i].Body.Data())
	}
	available := utils.ContentLocales(maps...)
	return utils.ResolveLocale(available, c.Query("lang"), detectedLocale(c))
}

// GetMyCourses lists the user's assigned courses with locale-resolved text.
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseIDs := assignedCourseIDs(userID)
	if len(courseIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": []fiber.Map{},
		})
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("id IN ? AND status = ? AND is_deleted = ?", courseIDs, "ACTIVE", false).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	requested := c.Query("lang")
	if requested == "" {
		requested = user.Locale
	}
	detected := detectedLocale(c)

	result := make([]fiber.Map, len(courses))
	for i, course := range courses {
		available := utils.ContentLocales(course.Title.Data(), course.Description.Data())
		locale := utils.ResolveLocale(available, requested, detected)

		// Course completion state for the listing
		var moduleIDs []uint
		database.Database.Db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Pluck("id", &moduleIDs)

		var progress courseModels.CourseProgress
		var completed []uint
		if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&progress).Error; err == nil {
			completed = progress.CompletedModuleIDs
		}

		result[i] = fiber.Map{
			"id":              course.ID,
			"title":           utils.LocalizedString(course.Title.Data(), locale),
			"description":     utils.LocalizedString(course.Description.Data(), locale),
			"cover_image_url": course.CoverImageURL,
			"locale":          locale,
			"module_count":    len(moduleIDs),
			"completed_count": courseModels.CompletedCount(moduleIDs, completed),
			"is_complete":     courseModels.IsCourseComplete(moduleIDs, completed),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetCourseDetails returns one assigned course with locale-resolved modules,
// media and progress. Module order is ascending order_index; the client opens
// the first incomplete module, or the first module when all are complete.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	if !userHasCourse(userID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to you!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.CourseModule
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	locale := resolveCourseLocale(c, &course, modules)

	var progress courseModels.CourseProgress
	var completed []uint
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err == nil {
		completed = progress.CompletedModuleIDs
	}
	completedSet := make(map[uint]bool, len(completed))
	for _, id := range completed {
		completedSet[id] = true
	}

	moduleIDs := make([]uint, len(modules))
	resolvedModules := make([]fiber.Map, len(modules))
	currentModuleID := uint(0)
	for i, mod := range modules {
		moduleIDs[i] = mod.ID
		if currentModuleID == 0 && !completedSet[mod.ID] {
			currentModuleID = mod.ID // first incomplete wins
		}
		resolvedModules[i] = fiber.Map{
			"id":             mod.ID,
			"title":          utils.LocalizedString(mod.Title.Data(), locale),
			"summary":        utils.LocalizedString(mod.Summary.Data(), locale),
			"body":           utils.LocalizedString(mod.Body.Data(), locale),
			"media":          courseModels.MediaForLocale(mod.NormalizedMedia(), locale),
			"order_index":    mod.OrderIndex,
			"module_type":    mod.ModuleType,
			"question_count": len(mod.Questions),
			"is_complete":    completedSet[mod.ID],
		}
	}
	if currentModuleID == 0 && len(modules) > 0 {
		currentModuleID = modules[0].ID // all complete: fall back to the first module
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course": fiber.Map{
			"id":              course.ID,
			"title":           utils.LocalizedString(course.Title.Data(), locale),
			"description":     utils.LocalizedString(course.Description.Data(), locale),
			"cover_image_url": course.CoverImageURL,
		},
		"locale":            locale,
		"modules":           resolvedModules,
		"current_module_id": currentModuleID,
		"is_complete":       courseModels.IsCourseComplete(moduleIDs, completed),
	})
}

// userHasCourse reports whether any customer membership assigns the course.
func userHasCourse(userID, courseID uint) bool {
	var memberships []models.CustomerMembership
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&memberships)
	for _, m := range memberships {
		if m.HasCourse(courseID) {
			return true
		}
	}
	return false
}
