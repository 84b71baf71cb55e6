package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"vti_backend/internals/configs"
	userModel "vti_backend/internals/features/users/model"
)

// SeedAdminUser bootstraps the first admin account from ENV.
// Skipped when ADMIN_PASSWORD is empty or the account already exists.
func SeedAdminUser() {
	if configs.AdminPassword == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := DB.Model(&userModel.AdminUserModel{}).
		Where("admin_user_email = ?", configs.AdminEmail).
		Count(&count).Error; err != nil {
		log.Printf("admin seed check err: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed hash err: %v", err)
		return
	}

	admin := userModel.AdminUserModel{
		AdminUserEmail:    configs.AdminEmail,
		AdminUserName:     "Administrator",
		AdminUserPassword: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("admin seed err: %v", err)
		return
	}
	log.Printf("✅ Admin account seeded: %s", configs.AdminEmail)
}
