package main

import (
	"flag"
	"log"

	"simdiklat_backend/config"
	"simdiklat_backend/database"
	"simdiklat_backend/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin or manager account. Usage:
//
//	go run ./scripts -email admin@example.go.id -password secret123 -nama "Admin" -role admin
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	nama := flag.String("nama", "", "account name")
	nik := flag.String("nik", "", "account NIK")
	role := flag.String("role", models.RoleManager, "account role (peserta, manager, admin)")
	flag.Parse()

	if *email == "" || *password == "" || *nama == "" {
		log.Fatal("email, password and nama are required")
	}
	if !models.IsValidRole(*role) {
		log.Fatalf("invalid role %q", *role)
	}

	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	if err := db.Where("email = ?", *email).First(&models.User{}).Error; err == nil {
		log.Fatalf("account %s already exists", *email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Email:    *email,
		Password: string(hashedPassword),
		Role:     *role,
		Nama:     *nama,
		NIK:      *nik,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create account: %v", err)
	}

	log.Printf("created %s account %s (id %d)", user.Role, user.Email, user.ID)
}
