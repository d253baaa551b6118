package customerController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateCustomer creates a new customer tenant for the caller's company.
func AdminCreateCustomer(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedCustomer").(*struct {
		Name          string `json:"name"`
		ContactName   string `json:"contact_name"`
		ContactEmail  string `json:"contact_email"`
		ContactPhone  string `json:"contact_phone"`
		Address       string `json:"address"`
		City          string `json:"city"`
		PostalCode    string `json:"postal_code"`
		ParentID      *uint  `json:"parent_id"`
		AllowSubunits bool   `json:"allow_subunits"`
		CourseIDs     []uint `json:"course_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// A subunit hangs off a parent that allows them; the hierarchy is two levels.
	if reqData.ParentID != nil {
		var parent models.Customer
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.ParentID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent customer not found!", nil)
		}
		if !parent.AllowSubunits {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent customer does not allow subunits!", nil)
		}
		if parent.ParentID != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subunits cannot have their own subunits!", nil)
		}
	}

	customer := models.Customer{
		Name:          reqData.Name,
		ContactName:   reqData.ContactName,
		ContactEmail:  reqData.ContactEmail,
		ContactPhone:  reqData.ContactPhone,
		Address:       reqData.Address,
		City:          reqData.City,
		PostalCode:    reqData.PostalCode,
		Status:        "ACTIVE",
		ParentID:      reqData.ParentID,
		AllowSubunits: reqData.AllowSubunits,
		CourseIDs:     datatypes.JSONSlice[uint](reqData.CourseIDs),
		CompanyID:     companyID,
	}

	if err := db.Create(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create customer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Customer created successfully!", customer)
}

// AdminUpdateCustomer updates an existing customer
func AdminUpdateCustomer(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	customerID := c.Locals("customerID").(int)

	var customer models.Customer
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", customerID, companyID, false).First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	reqData, ok := c.Locals("validatedCustomerUpdate").(*struct {
		Name          string  `json:"name"`
		ContactName   *string `json:"contact_name"`
		ContactEmail  *string `json:"contact_email"`
		ContactPhone  *string `json:"contact_phone"`
		Address       *string `json:"address"`
		City          *string `json:"city"`
		PostalCode    *string `json:"postal_code"`
		Status        string  `json:"status"`
		AllowSubunits *bool   `json:"allow_subunits"`
		CourseIDs     *[]uint `json:"course_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		customer.Name = reqData.Name
	}
	if reqData.ContactName != nil {
		customer.ContactName = *reqData.ContactName
	}
	if reqData.ContactEmail != nil {
		customer.ContactEmail = *reqData.ContactEmail
	}
	if reqData.ContactPhone != nil {
		customer.ContactPhone = *reqData.ContactPhone
	}
	if reqData.Address != nil {
		customer.Address = *reqData.Address
	}
	if reqData.City != nil {
		customer.City = *reqData.City
	}
	if reqData.PostalCode != nil {
		customer.PostalCode = *reqData.PostalCode
	}
	if reqData.Status != "" {
		customer.Status = reqData.Status
	}
	if reqData.AllowSubunits != nil {
		customer.AllowSubunits = *reqData.AllowSubunits
	}
	if reqData.CourseIDs != nil {
		customer.CourseIDs = datatypes.JSONSlice[uint](*reqData.CourseIDs)
	}

	if err := database.Database.Db.Save(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update customer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer updated successfully!", customer)
}

// AdminDeleteCustomer soft deletes a customer. Progress and completion records
// of its members are intentionally left in place.
func AdminDeleteCustomer(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	customerID := c.Locals("customerID").(int)

	var customer models.Customer
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", customerID, companyID, false).First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	customer.IsDeleted = true
	if err := database.Database.Db.Save(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete customer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer deleted successfully!", nil)
}

// AdminGetAllCustomers lists the company's customers
func AdminGetAllCustomers(c *fiber.Ctx) error {
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

	var customers []models.Customer
	var total int64

	db := database.Database.Db.Model(&models.Customer{}).Where("company_id = ? AND is_deleted = ?", companyID, false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&customers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch customers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched successfully!", fiber.Map{
		"customers": customers,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCustomerSubunits lists a customer's child customers
func AdminGetCustomerSubunits(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	customerID := c.Locals("customerID").(int)

	var customer models.Customer
	if err := database.Database.Db.Where("id = ? AND company_id = ? AND is_deleted = ?", customerID, companyID, false).First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	var subunits []models.Customer
	if err := database.Database.Db.Where("parent_id = ? AND is_deleted = ?", customer.ID, false).Find(&subunits).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subunits!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subunits fetched successfully!", fiber.Map{
		"subunits": subunits,
	})
}

// AdminInviteToCourse creates a course invite for a customer and mails it.
func AdminInviteToCourse(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	customerID := c.Locals("customerID").(int)

	reqData, ok := c.Locals("validatedInvite").(*struct {
		CourseID uint   `json:"course_id"`
		Email    string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var customer models.Customer
	if err := db.Where("id = ? AND company_id = ? AND is_deleted = ?", customerID, companyID, false).First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	if !customer.HasCourse(reqData.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course is not assigned to this customer!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	invite := models.CourseInvite{
		Code:       utils.GenerateCode(),
		CustomerID: customer.ID,
		CourseID:   reqData.CourseID,
		Email:      reqData.Email,
	}
	if err := db.Create(&invite).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create invite!", nil)
	}

	if reqData.Email != "" {
		courseName := utils.LocalizedString(course.Title.Data(), utils.FallbackLocalePrimary)
		utils.SendCourseInviteEmail(reqData.Email, customer.Name, courseName, invite.Code)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Invite created successfully!", invite)
}
