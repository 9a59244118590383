package seminarController

import (
	"log"
	"strconv"

	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	"simdiklat_backend/utils"
	seminarValidator "simdiklat_backend/validators/seminar"

	"github.com/gofiber/fiber/v2"
)

// GetAllSeminars lists every seminar, newest first. Public.
func GetAllSeminars(c *fiber.Ctx) error {
	var seminars []models.Seminar
	if err := database.Database.Db.Order("created_at desc").Find(&seminars).Error; err != nil {
		log.Printf("Error fetching seminars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch seminars!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seminars fetched successfully.", seminars)
}

// GetSeminarByID returns one seminar. Public.
func GetSeminarByID(c *fiber.Ctx) error {
	seminarID := c.Locals("seminarID").(int)

	var seminar models.Seminar
	if err := database.Database.Db.Where("id = ?", seminarID).First(&seminar).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Seminar not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seminar fetched successfully.", seminar)
}

// CreateSeminar creates a seminar owned by the caller. An admin may assign
// another account as the creator via manager_id.
func CreateSeminar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedSeminar").(*seminarValidator.CreateSeminarRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	creatorID := userID
	if role == models.RoleAdmin && reqData.ManagerID > 0 {
		creatorID = reqData.ManagerID
	}

	// Unique title check; the index backs this under concurrency
	if err := db.Where("title = ?", reqData.Title).First(&models.Seminar{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Seminar title already exists!", nil)
	}

	start, _ := seminarValidator.ParseDate(reqData.DateStart)
	end, _ := seminarValidator.ParseDate(reqData.DateEnd)

	seminarType := reqData.Type
	if seminarType == "" {
		seminarType = models.SeminarOnline
	}

	emptyList, _ := models.EncodeLinkItems([]models.LinkItem{})

	seminar := models.Seminar{
		CreatedBy:        creatorID,
		Title:            reqData.Title,
		Subtitle:         reqData.Subtitle,
		DateStart:        start,
		DateEnd:          end,
		Host:             reqData.Host,
		Description:      reqData.Description,
		Type:             seminarType,
		JP:               reqData.JP,
		Image:            reqData.Image,
		Location:         reqData.Location,
		Status:           models.SeminarOpened,
		RegistrationOpen: true,
		RegistrationLink: reqData.RegistrationLink,
		Links:            emptyList,
		Materials:        emptyList,
		Certificates:     emptyList,
	}

	if err := db.Create(&seminar).Error; err != nil {
		log.Printf("Error creating seminar: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Seminar title already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Seminar created successfully.", seminar)
}

// canMutateSeminar reports whether the caller owns the seminar or is an admin.
func canMutateSeminar(seminar *models.Seminar, userID uint, role string) bool {
	return role == models.RoleAdmin || seminar.CreatedBy == userID
}

// UpdateSeminar updates fields supplied in the request body. Creator or admin
// only.
func UpdateSeminar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	seminarID := c.Locals("seminarID").(int)

	reqData, ok := c.Locals("validatedSeminarUpdate").(*seminarValidator.UpdateSeminarRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var seminar models.Seminar
	if err := db.Where("id = ?", seminarID).First(&seminar).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Seminar not found!", nil)
	}

	if !canMutateSeminar(&seminar, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this seminar!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		seminar.Title = reqData.Title
	}
	if reqData.Subtitle != "" {
		seminar.Subtitle = reqData.Subtitle
	}
	if reqData.DateStart != "" {
		if t, ok := seminarValidator.ParseDate(reqData.DateStart); ok {
			seminar.DateStart = t
		}
	}
	if reqData.DateEnd != "" {
		if t, ok := seminarValidator.ParseDate(reqData.DateEnd); ok {
			seminar.DateEnd = t
		}
	}
	if reqData.Host != "" {
		seminar.Host = reqData.Host
	}
	if reqData.Description != "" {
		seminar.Description = reqData.Description
	}
	if reqData.Type != "" {
		seminar.Type = reqData.Type
	}
	if reqData.JP != nil {
		seminar.JP = *reqData.JP
	}
	if reqData.Image != "" {
		seminar.Image = reqData.Image
	}
	if reqData.Location != "" {
		seminar.Location = reqData.Location
	}
	if reqData.Status != "" {
		seminar.Status = reqData.Status
	}
	if reqData.RegistrationOpen != nil {
		seminar.RegistrationOpen = *reqData.RegistrationOpen
	}
	if reqData.RegistrationLink != "" {
		seminar.RegistrationLink = reqData.RegistrationLink
	}
	if reqData.Links != nil {
		if encoded, err := models.EncodeLinkItems(reqData.Links); err == nil {
			seminar.Links = encoded
		}
	}
	if reqData.Materials != nil {
		if encoded, err := models.EncodeLinkItems(reqData.Materials); err == nil {
			seminar.Materials = encoded
		}
	}
	if reqData.Feedback != "" {
		seminar.Feedback = reqData.Feedback
	}

	if !seminar.DateEnd.After(seminar.DateStart) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "End date must be after start date!", nil)
	}

	if err := db.Save(&seminar).Error; err != nil {
		log.Printf("Error updating seminar: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seminar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seminar updated successfully.", seminar)
}

// DeleteSeminar removes a seminar. Creator or admin only. Participation
// records are intentionally left in place.
func DeleteSeminar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)
	seminarID := c.Locals("seminarID").(int)

	db := database.Database.Db

	var seminar models.Seminar
	if err := db.Where("id = ?", seminarID).First(&seminar).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Seminar not found!", nil)
	}

	if !canMutateSeminar(&seminar, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this seminar!", nil)
	}

	if err := db.Delete(&seminar).Error; err != nil {
		log.Printf("Error deleting seminar: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete seminar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seminar deleted.", nil)
}

// UploadSeminarCertificate appends a shared certificate entry to the seminar.
// Accepts either a multipart file or a plain URL.
func UploadSeminarCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	seminarID, err := strconv.Atoi(c.FormValue("id"))
	if err != nil || seminarID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid seminar id!", nil)
	}

	certificateURL := c.FormValue("url")
	label := c.FormValue("label")
	if label == "" {
		label = "Sertifikat Umum"
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		filename, err := utils.SaveUploadedFile(file)
		if err != nil {
			log.Printf("Error saving certificate file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		certificateURL = utils.GetFileURL(filename)
	}

	if certificateURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No certificate file or URL provided!", nil)
	}

	db := database.Database.Db

	var seminar models.Seminar
	if err := db.Where("id = ?", seminarID).First(&seminar).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Seminar not found!", nil)
	}

	if !canMutateSeminar(&seminar, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this seminar!", nil)
	}

	updated, err := models.AppendLinkItem(seminar.Certificates, models.LinkItem{Label: label, URL: certificateURL})
	if err != nil {
		log.Printf("Error appending certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seminar!", nil)
	}
	seminar.Certificates = updated

	if err := db.Save(&seminar).Error; err != nil {
		log.Printf("Error saving seminar certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seminar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate uploaded successfully.", seminar)
}
