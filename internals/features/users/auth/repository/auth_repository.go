package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "muaku_backend/internals/features/users/auth/model"
)

// FindActiveUserByIdentifier mencari user aktif berdasarkan username ATAU email.
// Identifier sudah dinormalisasi (trim + lowercase) oleh pemanggil.
func FindActiveUserByIdentifier(db *gorm.DB, identifier string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.
		Where("is_active = ? AND (lower(user_name) = ? OR lower(email) = ?)", true, identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers(db *gorm.DB) ([]authModel.UserModel, error) {
	var users []authModel.UserModel
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}
