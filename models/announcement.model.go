package models

import (
	"time"
)

type Announcement struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"default:''" json:"description"`
	Thumbnail   *string   `json:"thumbnail"`
	VideoURL    string    `gorm:"not null" json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
