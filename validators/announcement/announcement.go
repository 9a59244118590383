package announcementValidator

import (
	"strconv"
	"strings"

	"simdiklat_backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// Create validator middleware. Announcements arrive as multipart forms (the
// thumbnail is an optional file) so fields are read from form values.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if strings.TrimSpace(c.FormValue("title")) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(c.FormValue("video_url")) == "" {
			errors["video_url"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// AnnouncementID validates the :id path parameter.
func AnnouncementID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
		}
		c.Locals("announcementID", id)
		return c.Next()
	}
}
