package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"muaku_backend/internals/features/users/auth/model"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, username, email, password string, active bool) model.UserModel {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)

	user := model.UserModel{
		UserName: username,
		Email:    email,
		Password: hashed,
		FullName: "Test User",
		Role:     "admin",
		IsActive: active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestVerifyCredentialsByUsername(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedTestUser(t, db, "vivi", "vivi@muaku.id", "kata-sandi-vivi", true)

	su, err := VerifyCredentials(db, "vivi", "kata-sandi-vivi")
	require.NoError(t, err)
	assert.Equal(t, user.ID, su.UserID)
	assert.Equal(t, "vivi", su.UserName)
	assert.Equal(t, "vivi@muaku.id", su.Email)
	assert.Equal(t, "admin", su.Role)
}

func TestVerifyCredentialsByEmail(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedTestUser(t, db, "vivi", "vivi@muaku.id", "kata-sandi-vivi", true)

	su, err := VerifyCredentials(db, "vivi@muaku.id", "kata-sandi-vivi")
	require.NoError(t, err)
	assert.Equal(t, user.ID, su.UserID)
}

func TestVerifyCredentialsNormalizesIdentifier(t *testing.T) {
	db := newAuthTestDB(t)
	seedTestUser(t, db, "vivi", "vivi@muaku.id", "kata-sandi-vivi", true)

	su, err := VerifyCredentials(db, "  ViVi@Muaku.ID  ", "kata-sandi-vivi")
	require.NoError(t, err)
	assert.Equal(t, "vivi", su.UserName)
}

func TestVerifyCredentialsSingleFailureSignal(t *testing.T) {
	db := newAuthTestDB(t)
	seedTestUser(t, db, "vivi", "vivi@muaku.id", "kata-sandi-vivi", true)

	// user tidak ada dan password salah harus menghasilkan error yang
	// persis sama, tidak boleh bisa dibedakan dari luar
	_, errUnknown := VerifyCredentials(db, "bukan-siapa-siapa", "apapun")
	_, errWrongPass := VerifyCredentials(db, "vivi", "password-salah")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestVerifyCredentialsInactiveUserRejected(t *testing.T) {
	db := newAuthTestDB(t)
	seedTestUser(t, db, "mantan", "mantan@muaku.id", "kata-sandi-lama", false)

	_, err := VerifyCredentials(db, "mantan", "kata-sandi-lama")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyCredentialsFailurePathsPayBcryptCost(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedTestUser(t, db, "vivi", "vivi@muaku.id", "kata-sandi-vivi", true)

	var compared [][]byte
	orig := compareHashAndPassword
	compareHashAndPassword = func(hashed, password []byte) error {
		compared = append(compared, hashed)
		return orig(hashed, password)
	}
	defer func() { compareHashAndPassword = orig }()

	// user tidak ada: tetap satu kali compare, terhadap dummy hash
	_, err := VerifyCredentials(db, "bukan-siapa-siapa", "apapun")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.Equal(t, []byte(dummyPasswordHash), compared[0])

	// password salah: juga satu kali compare, terhadap hash user
	compared = nil
	_, err = VerifyCredentials(db, "vivi", "password-salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.Equal(t, []byte(user.Password), compared[0])
}

func TestDummyHashParsesAtConfiguredCost(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost)

	// hash-nya harus valid: compare berjalan penuh dan berakhir mismatch,
	// bukan gagal parse
	err = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte("kata-sandi"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestHashPasswordNeverPlaintext(t *testing.T) {
	hashed, err := HashPassword("kata-sandi")
	require.NoError(t, err)
	assert.NotEqual(t, "kata-sandi", hashed)
	assert.NotContains(t, hashed, "kata-sandi")
}
