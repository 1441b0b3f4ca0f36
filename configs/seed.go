package configs

import (
	"log"

	"campuseats/entity"

	"golang.org/x/crypto/bcrypt"
)

// first-boot admin from env
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:      email,
		Password:   string(hash),
		Firstname:  "Admin",
		Lastname:   "Seed",
		Role:       entity.RoleAdmin,
		IsApproved: true,
	}
	return db.Create(&admin).Error
}
