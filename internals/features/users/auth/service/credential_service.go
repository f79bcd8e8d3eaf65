package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "muaku_backend/internals/features/users/auth/repository"
)

const bcryptCost = 12

// ErrInvalidCredentials: satu sinyal untuk "user tidak ada" dan "password
// salah". Jangan pernah dipecah jadi dua pesan.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyPasswordHash adalah hash bcrypt cost 12 yang valid tapi tidak cocok
// dengan password mana pun yang kami pakai. Dipakai saat user tidak ditemukan
// supaya jalur gagal tetap membayar biaya bcrypt yang sama (latensi tidak
// membocorkan ada/tidaknya user). Precomputed, bukan digenerate saat runtime:
// generate yang gagal akan meninggalkan hash nil dan diam-diam mematikan
// penyamaan latensi ini.
const dummyPasswordHash = "$2a$12$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// variabel supaya test bisa mengamati bahwa kedua jalur gagal
// sama-sama menjalankan compare
var compareHashAndPassword = bcrypt.CompareHashAndPassword

// VerifyCredentials mencocokkan identifier (username/email) + password.
// Sukses mengembalikan view user tanpa hash; gagal selalu ErrInvalidCredentials,
// termasuk saat lookup error (fail closed).
func VerifyCredentials(db *gorm.DB, identifier, password string) (*SessionUser, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))

	user, err := authRepo.FindActiveUserByIdentifier(db, ident)
	if err != nil {
		_ = compareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := compareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &SessionUser{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
