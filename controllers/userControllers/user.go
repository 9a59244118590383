package userController

import (
	"log"

	"simdiklat_backend/config"
	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	userValidator "simdiklat_backend/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers lists every account. Password and refresh token never leave the
// server (json:"-" on the model).
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// GetUserByID returns one account.
func GetUserByID(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// CreateUser is the admin account-creation path.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email sudah digunakan!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.Role
	if role == "" {
		role = models.RolePeserta
	}

	user := models.User{
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		Role:         role,
		NIK:          reqData.NIK,
		Nama:         reqData.Nama,
		Kota:         reqData.Kota,
		Usia:         reqData.Usia,
		Kelamin:      reqData.Kelamin,
		TanggalLahir: userValidator.ParseBirthDate(reqData.TanggalLahir),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email sudah digunakan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// UpdateUser updates profile fields. Role changes are restricted to admins;
// a supplied password is re-hashed.
func UpdateUser(c *fiber.Ctx) error {
	callerRole, _ := c.Locals("role").(string)
	targetID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedUpdateUser").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Role != "" && reqData.Role != user.Role {
		if callerRole != models.RoleAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only admins may change roles!", nil)
		}
		user.Role = reqData.Role
	}

	if reqData.Email != "" {
		user.Email = reqData.Email
	}
	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user.Password = string(hashedPassword)
	}
	if reqData.ProfilePicture != "" {
		user.ProfilePicture = reqData.ProfilePicture
	}
	if reqData.NIK != "" {
		user.NIK = reqData.NIK
	}
	if reqData.Nama != "" {
		user.Nama = reqData.Nama
	}
	if reqData.Kota != "" {
		user.Kota = reqData.Kota
	}
	if reqData.Usia != nil {
		user.Usia = *reqData.Usia
	}
	if reqData.Kelamin != "" {
		user.Kelamin = reqData.Kelamin
	}
	if t := userValidator.ParseBirthDate(reqData.TanggalLahir); t != nil {
		user.TanggalLahir = t
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", user)
}

// DeleteUser removes an account. Participation and seminar records referring
// to it are intentionally left in place.
func DeleteUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Delete(&user).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
