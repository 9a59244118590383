package authController

import (
	"log"
	"time"

	"simdiklat_backend/config"
	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	"simdiklat_backend/utils"
	authValidator "simdiklat_backend/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account. Self-registration defaults to the peserta
// role; the seeder and admin tooling pass an explicit role.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
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

	newUser := models.User{
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		Role:         role,
		NIK:          reqData.NIK,
		Nama:         reqData.Nama,
		Kota:         reqData.Kota,
		Usia:         reqData.Usia,
		Kelamin:      reqData.Kelamin,
		TanggalLahir: reqData.BirthDate(),
	}

	if err := db.Create(&newUser).Error; err != nil {
		// The unique index on email also fires when two registrations race
		// past the check above.
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email sudah digunakan!", nil)
	}

	go utils.SyncNewUser(newUser.Email, newUser.Nama, newUser.NIK, newUser.Role)
	utils.SendWelcomeEmail(newUser.Email, newUser.Nama)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Register berhasil.", fiber.Map{
		"id":    newUser.ID,
		"email": newUser.Email,
		"role":  newUser.Role,
	})
}

// Login verifies credentials and issues the access/refresh token pair. The
// failure message never distinguishes an unknown email from a wrong password.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login gagal!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login gagal!", nil)
	}

	accessToken, err := middleware.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	refreshToken, err := middleware.GenerateRefreshToken(user.ID)
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	// One active refresh token per account: every login replaces the previous
	// one, invalidating prior sessions.
	if err := db.Model(&user).Update("refresh_token", refreshToken).Error; err != nil {
		log.Printf("Error saving refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	tracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&tracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(middleware.RefreshTokenTTL),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login berhasil.", fiber.Map{
		"access_token": accessToken,
		"role":         user.Role,
	})
}

// Refresh exchanges a valid refresh cookie for a new access token.
func Refresh(c *fiber.Ctx) error {
	cookie := c.Cookies(middleware.RefreshCookieName)
	if cookie == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No refresh token!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("refresh_token = ? AND refresh_token <> ''", cookie).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid refresh token!", nil)
	}

	userID, err := middleware.ParseRefreshToken(cookie)
	if err != nil || userID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid refresh token!", nil)
	}

	accessToken, err := middleware.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{
		"access_token": accessToken,
	})
}

// Logout clears the stored refresh token and the cookie. Always succeeds.
func Logout(c *fiber.Ctx) error {
	cookie := c.Cookies(middleware.RefreshCookieName)
	if cookie == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("refresh_token = ? AND refresh_token <> ''", cookie).First(&user).Error; err == nil {
		if err := db.Model(&user).Update("refresh_token", "").Error; err != nil {
			log.Printf("Error clearing refresh token: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})

	return c.SendStatus(fiber.StatusNoContent)
}
