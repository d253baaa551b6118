package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateCourse creates a new course for the caller's company
func AdminCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	// Get validated request data
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title           map[string]string `json:"title"`
		Description     map[string]string `json:"description"`
		CoverImageURL   string            `json:"cover_image_url"`
		ExpirationType  string            `json:"expiration_type"`
		ExpirationValue int               `json:"expiration_value"`
		ExpirationDate  *time.Time        `json:"expiration_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	expirationType := reqData.ExpirationType
	if expirationType == "" {
		expirationType = courseModels.ExpirationNone
	}

	course := courseModels.Course{
		CompanyID:       companyID,
		CreatedBy:       userID,
		Title:           datatypes.NewJSONType(reqData.Title),
		Description:     datatypes.NewJSONType(reqData.Description),
		CoverImageURL:   reqData.CoverImageURL,
		Status:          "ACTIVE",
		ExpirationType:  expirationType,
		ExpirationValue: reqData.ExpirationValue,
		ExpirationDate:  reqData.ExpirationDate,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title           map[string]string `json:"title"`
		Description     map[string]string `json:"description"`
		CoverImageURL   *string           `json:"cover_image_url"`
		Status          string            `json:"status"`
		ExpirationType  string            `json:"expiration_type"`
		ExpirationValue *int              `json:"expiration_value"`
		ExpirationDate  *time.Time        `json:"expiration_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if len(reqData.Title) > 0 {
		course.Title = datatypes.NewJSONType(reqData.Title)
	}
	if len(reqData.Description) > 0 {
		course.Description = datatypes.NewJSONType(reqData.Description)
	}
	if reqData.CoverImageURL != nil {
		course.CoverImageURL = *reqData.CoverImageURL
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.ExpirationType != "" {
		course.ExpirationType = reqData.ExpirationType
	}
	if reqData.ExpirationValue != nil {
		course.ExpirationValue = *reqData.ExpirationValue
	}
	if reqData.ExpirationDate != nil {
		course.ExpirationDate = reqData.ExpirationDate
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course. Modules, progress and completion
// records are left untouched, matching the portal's no-cascade policy.
func AdminDeleteCourse(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists the company's courses
func AdminGetAllCourses(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var courses []courseModels.Course
	var total int64

	db := database.Database.Db.Model(&courseModels.Course{}).Where("company_id = ? AND is_deleted = ?", companyID, false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCourseDetails gets a single course with its modules
func AdminGetCourseDetails(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Modules in presentation order
	var modules []courseModels.CourseModule
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	// Progress record count
	var progressCount int64
	database.Database.Db.Model(&courseModels.CourseProgress{}).Where("course_id = ?", courseID).Count(&progressCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":         course,
		"modules":        modules,
		"progress_count": progressCount,
	})
}
