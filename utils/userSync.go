package utils

import (
	"log"
	"time"

	"simdiklat_backend/config"

	"github.com/go-resty/resty/v2"
)

// SyncNewUser pushes a newly registered account to the external HR endpoint
// when one is configured. Best-effort: failures are logged and never block
// registration. Call from a goroutine.
func SyncNewUser(email, nama, nik, role string) {
	syncURL := config.AppConfig.UserSyncURL
	if syncURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetFormData(map[string]string{
			"email": email,
			"nama":  nama,
			"nik":   nik,
			"role":  role,
		}).
		Post(syncURL)

	if err != nil {
		log.Printf("Error syncing user to external server: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("External user sync failed: %s", resp.String())
		return
	}

	log.Printf("User synced successfully to external server: %s", email)
}
