package authController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// InviteSignup creates a new account from a course invite code and links it to
// the invite's customer with the invite's course assigned.
func InviteSignup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInviteSignup").(*struct {
		Code      string `json:"code"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var invite models.CourseInvite
	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&invite).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invite not found!", nil)
	}

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Email:             reqData.Email,
		Password:          string(hashedPassword),
		FirstName:         reqData.FirstName,
		LastName:          reqData.LastName,
		IsProfileComplete: reqData.FirstName != "" && reqData.LastName != "",
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	membership := models.CustomerMembership{
		UserID:            newUser.ID,
		CustomerID:        invite.CustomerID,
		Roles:             datatypes.JSONSlice[string]{models.CustomerRoleUser},
		AssignedCourseIDs: datatypes.JSONSlice[uint]{invite.CourseID},
	}
	if err := db.Create(&membership).Error; err != nil {
		log.Printf("Error creating customer membership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	now := time.Now()
	invite.ConsumedAt = &now
	db.Save(&invite)

	token, err := middleware.GenerateJWT(newUser.ID, newUser.FullName(), newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// InviteRedeem links an existing authenticated account to the invite's course.
// Adding a course that is already assigned is a no-op.
func InviteRedeem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedInviteRedeem").(*struct {
		Code string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var invite models.CourseInvite
	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&invite).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invite not found!", nil)
	}

	var membership models.CustomerMembership
	err := db.Where("user_id = ? AND customer_id = ? AND is_deleted = ?", userID, invite.CustomerID, false).First(&membership).Error
	if err != nil {
		membership = models.CustomerMembership{
			UserID:            userID,
			CustomerID:        invite.CustomerID,
			Roles:             datatypes.JSONSlice[string]{models.CustomerRoleUser},
			AssignedCourseIDs: datatypes.JSONSlice[uint]{invite.CourseID},
		}
		if err := db.Create(&membership).Error; err != nil {
			log.Printf("Error creating customer membership: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to redeem invite!", nil)
		}
	} else if !membership.HasCourse(invite.CourseID) {
		membership.AssignedCourseIDs = append(membership.AssignedCourseIDs, invite.CourseID)
		if err := db.Save(&membership).Error; err != nil {
			log.Printf("Error updating customer membership: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to redeem invite!", nil)
		}
	}

	now := time.Now()
	invite.ConsumedAt = &now
	db.Save(&invite)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite redeemed successfully.", membership)
}

// ResolveMagicLink consumes a single-use, time-limited sign-in code. Unknown
// codes return 404; expired or already consumed codes return 410.
func ResolveMagicLink(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing code!", nil)
	}

	db := database.Database.Db

	var link models.MagicLink
	if err := db.Where("code = ?", code).First(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found!", nil)
	}

	now := time.Now()
	if link.Consumed() || link.Expired(now) {
		return middleware.JsonResponse(c, fiber.StatusGone, false, "Link has expired or was already used!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", link.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	link.ConsumedAt = &now
	if err := db.Save(&link).Error; err != nil {
		log.Printf("Error consuming magic link: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	user.LastLogin = now
	db.Save(&user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed in successfully.", fiber.Map{
		"token":         token,
		"redirect_path": link.RedirectPath,
	})
}

// RequestMagicLink creates and mails a fresh sign-in link for a known email.
func RequestMagicLink(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMagicLinkRequest").(*struct {
		Email        string `json:"email"`
		RedirectPath string `json:"redirect_path"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		// Same response as success so addresses cannot be probed
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the address is registered, a sign-in link has been sent.", nil)
	}

	redirect := reqData.RedirectPath
	if redirect == "" {
		redirect = "/"
	}

	link := models.MagicLink{
		Code:         utils.GenerateCode(),
		UserID:       user.ID,
		RedirectPath: redirect,
		ExpiresAt:    time.Now().Add(time.Duration(config.AppConfig.MagicLinkTTLMin) * time.Minute),
	}
	if err := db.Create(&link).Error; err != nil {
		log.Printf("Error creating magic link: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sign-in link!", nil)
	}

	utils.SendMagicLinkEmail(user.Email, user.FullName(), link.Code, config.AppConfig.MagicLinkTTLMin)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the address is registered, a sign-in link has been sent.", nil)
}

// Login authenticates with email and password and returns a bearer token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	user.LastLogin = time.Now()
	db.Save(&user)

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed in successfully.", fiber.Map{
		"user":  user,
		"token": token,
	})
}
