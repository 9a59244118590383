package utils

import (
	"log"
	"time"

	"simdiklat_backend/database"
	"simdiklat_backend/models"

	"github.com/robfig/cron/v3"
)

// InitializeSeminarScheduler sets up the daily seminar lifecycle job.
func InitializeSeminarScheduler() {
	log.Println("[SEMINAR-SCHEDULER] Initializing seminar scheduler...")

	c := cron.New()

	// Run daily at midnight to close out finished seminars
	c.AddFunc("0 0 * * *", func() {
		log.Println("[SEMINAR-SCHEDULER] Running daily seminar status check...")
		CompleteFinishedSeminars()
	})

	c.Start()
	log.Println("[SEMINAR-SCHEDULER] Seminar scheduler started - runs daily at midnight")
}

// CompleteFinishedSeminars marks seminars whose end date has passed as
// completed and closes their registration.
func CompleteFinishedSeminars() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Seminar{}).
		Where("date_end < ? AND status <> ?", now, models.SeminarCompleted).
		Updates(map[string]interface{}{
			"status":            models.SeminarCompleted,
			"registration_open": false,
		})

	if result.Error != nil {
		log.Printf("[SEMINAR-SCHEDULER] Error completing seminars: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SEMINAR-SCHEDULER] Marked %d seminars as completed", result.RowsAffected)
	}
}
