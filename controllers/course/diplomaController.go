package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// assignedCustomer finds the customer whose membership grants the user the
// course. The first matching membership wins.
func assignedCustomer(userID, courseID uint) (*models.Customer, error) {
	var memberships []models.CustomerMembership
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&memberships).Error; err != nil {
		return nil, err
	}
	for _, m := range memberships {
		if !m.HasCourse(courseID) {
			continue
		}
		var customer models.Customer
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", m.CustomerID, false).First(&customer).Error; err != nil {
			continue
		}
		return &customer, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// loadDiplomaTemplate returns the company's template, or the default layout
// when none is configured.
func loadDiplomaTemplate(companyID uint) courseModels.DiplomaTemplate {
	var template courseModels.DiplomaTemplate
	if err := database.Database.Db.Where("company_id = ? AND is_deleted = ?", companyID, false).First(&template).Error; err != nil {
		return courseModels.DefaultDiplomaTemplate(companyID)
	}
	return template
}

// IssueDiploma renders the caller's certificate for a completed course as a
// PDF download. The first successful issuance writes a completion snapshot;
// later calls reissue from the snapshot so the recorded date never moves.
func IssueDiploma(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	customer, err := assignedCustomer(userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to you!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var moduleIDs []uint
	database.Database.Db.Model(&courseModels.CourseModule{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Pluck("id", &moduleIDs)

	var progress courseModels.CourseProgress
	var completed []uint
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err == nil {
		completed = progress.CompletedModuleIDs
	}

	if !courseModels.IsCourseComplete(moduleIDs, completed) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not completed yet!", nil)
	}

	locale := utils.ResolveLocale(utils.ContentLocales(course.Title.Data()), c.Query("lang"), user.Locale)
	courseTitle := utils.LocalizedString(course.Title.Data(), locale)

	// First issuance writes the snapshot; reissues reuse it verbatim.
	var completion courseModels.CourseCompletion
	err = database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&completion).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load completion record!", nil)
		}
		completion = courseModels.CourseCompletion{
			UserID:          userID,
			CourseID:        uint(courseID),
			CustomerID:      customer.ID,
			ParticipantName: user.FullName(),
			CourseTitle:     courseTitle,
			CustomerName:    customer.Name,
			CompletedAt:     time.Now(),
		}
		if err := database.Database.Db.Create(&completion).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record completion!", nil)
		}
		utils.SendDiplomaIssuedEmail(user.Email, completion.ParticipantName, completion.CourseTitle)
	}

	template := loadDiplomaTemplate(course.CompanyID)

	var company models.Company
	issuerName := config.AppConfig.IssuerName
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", course.CompanyID, false).First(&company).Error; err == nil && company.IssuerName != "" {
		issuerName = company.IssuerName
	}

	pdfBytes, err := utils.RenderDiploma(utils.DiplomaData{
		TitleText:         template.TitleText,
		BodyText:          template.BodyText,
		FooterText:        template.FooterText,
		ParticipantName:   completion.ParticipantName,
		CourseName:        completion.CourseTitle,
		CustomerName:      completion.CustomerName,
		IssuerName:        issuerName,
		CompletedDate:     completion.CompletedAt.Format("2006-01-02"),
		AccentColor:       template.AccentColor,
		LogoURL:           template.LogoURL,
		SignatureImageURL: template.SignatureImageURL,
		SignatureName:     template.SignatureName,
		SignatureTitle:    template.SignatureTitle,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render diploma!", nil)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+utils.DiplomaFilename(completion.CourseTitle)+`"`)
	return c.Send(pdfBytes)
}

// AdminGetDiplomaTemplate returns the company's template, defaults when unset.
func AdminGetDiplomaTemplate(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Diploma template fetched successfully!", loadDiplomaTemplate(companyID))
}

// AdminUpdateDiplomaTemplate creates or updates the company's template.
func AdminUpdateDiplomaTemplate(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedDiplomaTemplate").(*struct {
		TitleText         string `json:"title_text"`
		BodyText          string `json:"body_text"`
		FooterText        string `json:"footer_text"`
		AccentColor       string `json:"accent_color"`
		LogoURL           string `json:"logo_url"`
		SignatureImageURL string `json:"signature_image_url"`
		SignatureName     string `json:"signature_name"`
		SignatureTitle    string `json:"signature_title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var template courseModels.DiplomaTemplate
	if err := database.Database.Db.Where("company_id = ?", companyID).First(&template).Error; err != nil {
		template = courseModels.DefaultDiplomaTemplate(companyID)
	}

	if reqData.TitleText != "" {
		template.TitleText = reqData.TitleText
	}
	if reqData.BodyText != "" {
		template.BodyText = reqData.BodyText
	}
	if reqData.FooterText != "" {
		template.FooterText = reqData.FooterText
	}
	if reqData.AccentColor != "" {
		template.AccentColor = reqData.AccentColor
	}
	template.LogoURL = reqData.LogoURL
	template.SignatureImageURL = reqData.SignatureImageURL
	template.SignatureName = reqData.SignatureName
	template.SignatureTitle = reqData.SignatureTitle
	template.IsDeleted = false

	if err := database.Database.Db.Save(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save diploma template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Diploma template saved successfully!", template)
}

// AdminPreviewDiploma renders the company's template with sample data so the
// layout can be checked before anyone completes a course.
func AdminPreviewDiploma(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	template := loadDiplomaTemplate(companyID)

	var company models.Company
	issuerName := config.AppConfig.IssuerName
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err == nil && company.IssuerName != "" {
		issuerName = company.IssuerName
	}

	pdfBytes, err := utils.RenderDiploma(utils.DiplomaData{
		TitleText:         template.TitleText,
		BodyText:          template.BodyText,
		FooterText:        template.FooterText,
		ParticipantName:   "Kari Nordmann",
		CourseName:        "Sample Safety Course",
		CustomerName:      "Sample Customer AS",
		IssuerName:        issuerName,
		CompletedDate:     time.Now().Format("2006-01-02"),
		AccentColor:       template.AccentColor,
		LogoURL:           template.LogoURL,
		SignatureImageURL: template.SignatureImageURL,
		SignatureName:     template.SignatureName,
		SignatureTitle:    template.SignatureTitle,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render diploma!", nil)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="diploma-preview.pdf"`)
	return c.Send(pdfBytes)
}
