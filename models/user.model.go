package models

import (
	"time"
)

// Roles assigned to an account. Peserta is the self-registration default.
const (
	RolePeserta = "peserta"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	Role           string     `gorm:"default:'peserta'" json:"role"`
	ProfilePicture string     `gorm:"default:''" json:"profile_picture"`
	NIK            string     `gorm:"default:''" json:"nik"`
	Nama           string     `gorm:"default:''" json:"nama"`
	Kota           string     `gorm:"default:''" json:"kota"`
	Usia           int        `gorm:"default:0" json:"usia"`
	Kelamin        string     `gorm:"default:''" json:"kelamin"`
	TanggalLahir   *time.Time `json:"tanggal_lahir"`
	RefreshToken   string     `gorm:"default:''" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsValidRole reports whether role is one of the three known account roles.
func IsValidRole(role string) bool {
	return role == RolePeserta || role == RoleManager || role == RoleAdmin
}
