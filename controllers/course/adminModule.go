package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateModule creates a new module in a course
func AdminCreateModule(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       map[string]string                   `json:"title"`
		Summary     map[string]string                   `json:"summary"`
		Body        map[string]string                   `json:"body"`
		Media       map[string][]courseModels.MediaItem `json:"media"`
		Questions   []courseModels.Question             `json:"questions"`
		OrderIndex  int                                 `json:"order_index"`
		ModuleType  string                              `json:"module_type"`
		PassPercent int                                 `json:"pass_percent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Get the next order index if not provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	moduleType := reqData.ModuleType
	if moduleType == "" {
		moduleType = courseModels.ModuleTypeNormal
	}

	module := courseModels.CourseModule{
		CourseID:    uint(courseID),
		Title:       datatypes.NewJSONType(reqData.Title),
		Summary:     datatypes.NewJSONType(reqData.Summary),
		Body:        datatypes.NewJSONType(reqData.Body),
		Media:       datatypes.NewJSONType(reqData.Media),
		Questions:   datatypes.NewJSONSlice(reqData.Questions),
		OrderIndex:  orderIndex,
		ModuleType:  moduleType,
		PassPercent: reqData.PassPercent,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates an existing module
func AdminUpdateModule(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       map[string]string                   `json:"title"`
		Summary     map[string]string                   `json:"summary"`
		Body        map[string]string                   `json:"body"`
		Media       map[string][]courseModels.MediaItem `json:"media"`
		Questions   []courseModels.Question             `json:"questions"`
		OrderIndex  int                                 `json:"order_index"`
		ModuleType  string                              `json:"module_type"`
		PassPercent int                                 `json:"pass_percent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if len(reqData.Title) > 0 {
		module.Title = datatypes.NewJSONType(reqData.Title)
	}
	if len(reqData.Summary) > 0 {
		module.Summary = datatypes.NewJSONType(reqData.Summary)
	}
	if len(reqData.Body) > 0 {
		module.Body = datatypes.NewJSONType(reqData.Body)
	}
	if len(reqData.Media) > 0 {
		module.Media = datatypes.NewJSONType(reqData.Media)
	}
	if len(reqData.Questions) > 0 {
		module.Questions = datatypes.NewJSONSlice(reqData.Questions)
	}
	if reqData.OrderIndex > 0 {
		module.OrderIndex = reqData.OrderIndex
	}
	if reqData.ModuleType != "" {
		module.ModuleType = reqData.ModuleType
	}
	if reqData.PassPercent > 0 {
		module.PassPercent = reqData.PassPercent
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft deletes a module. Progress records that reference the
// module id keep it; completion derivation only looks at live modules.
func AdminDeleteModule(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists all modules in a course in presentation order
func AdminListModules(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", courseID, companyID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.CourseModule
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type ModuleWithCounts struct {
		courseModels.CourseModule
		QuestionCount int `json:"question_count"`
		MediaLocales  int `json:"media_locales"`
	}

	result := make([]ModuleWithCounts, len(modules))
	for i, mod := range modules {
		result[i] = ModuleWithCounts{
			CourseModule:  mod,
			QuestionCount: len(mod.Questions),
			MediaLocales:  len(mod.NormalizedMedia()),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": result,
	})
}
