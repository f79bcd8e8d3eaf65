package users

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"muaku_backend/internals/features/users/auth/model"
	"muaku_backend/internals/features/users/auth/service"
)

// SeedOwnerUser membuat akun owner pertama dari env. Tanpa akun ini
// tidak ada yang bisa login, jadi seed ini wajib di instalasi baru.
func SeedOwnerUser(db *gorm.DB) {
	username := os.Getenv("OWNER_USERNAME")
	email := os.Getenv("OWNER_EMAIL")
	password := os.Getenv("OWNER_PASSWORD")
	if username == "" || email == "" || password == "" {
		log.Println("ℹ️ OWNER_USERNAME/OWNER_EMAIL/OWNER_PASSWORD belum diset, seed owner dilewati.")
		return
	}

	var existing model.UserModel
	if err := db.Where("lower(user_name) = ? OR lower(email) = ?",
		strings.ToLower(username), strings.ToLower(email)).
		First(&existing).Error; err == nil {
		log.Printf("ℹ️ User owner '%s' sudah ada, dilewati.", username)
		return
	}

	hashed, err := service.HashPassword(password)
	if err != nil {
		log.Printf("❌ Gagal hash password owner: %v", err)
		return
	}

	owner := model.UserModel{
		UserName: username,
		Email:    email,
		Password: hashed,
		FullName: "Owner",
		Role:     "owner",
		IsActive: true,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Printf("❌ Gagal insert user owner: %v", err)
		return
	}
	log.Printf("✅ Berhasil insert user owner '%s'", username)
}
