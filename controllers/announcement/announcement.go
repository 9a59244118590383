package announcementController

import (
	"log"

	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	"simdiklat_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllAnnouncements lists announcements newest first. Public.
func GetAllAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	if err := database.Database.Db.Order("created_at desc").Find(&announcements).Error; err != nil {
		log.Printf("Error fetching announcements: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully.", announcements)
}

// CreateAnnouncement creates an announcement from a multipart form with an
// optional thumbnail file.
func CreateAnnouncement(c *fiber.Ctx) error {
	announcement := models.Announcement{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		VideoURL:    c.FormValue("video_url"),
	}

	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		filename, err := utils.SaveUploadedFile(file)
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		url := utils.GetFileURL(filename)
		announcement.Thumbnail = &url
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully.", announcement)
}

// UpdateAnnouncement updates fields supplied in the form; a new thumbnail
// replaces the old one.
func UpdateAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Locals("announcementID").(int)

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if title := c.FormValue("title"); title != "" {
		announcement.Title = title
	}
	if description := c.FormValue("description"); description != "" {
		announcement.Description = description
	}
	if videoURL := c.FormValue("video_url"); videoURL != "" {
		announcement.VideoURL = videoURL
	}

	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		filename, err := utils.SaveUploadedFile(file)
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
		}
		url := utils.GetFileURL(filename)
		announcement.Thumbnail = &url
	}

	if err := db.Save(&announcement).Error; err != nil {
		log.Printf("Error updating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully.", announcement)
}

// DeleteAnnouncement removes an announcement.
func DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Locals("announcementID").(int)

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if err := db.Delete(&announcement).Error; err != nil {
		log.Printf("Error deleting announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully.", nil)
}
