package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"muaku_backend/internals/configs"
)

// SessionTTL membatasi umur token secara absolut sejak diterbitkan.
// Tidak ada perpanjangan saat dipakai; habis ya login ulang.
const SessionTTL = 24 * time.Hour

// ErrInvalidToken dipakai untuk SEMUA mode gagal (signature salah, rusak,
// expired) supaya klien tidak bisa membedakan penyebabnya.
var ErrInvalidToken = errors.New("invalid session token")

// SessionUser adalah isi token: cukup untuk mengotorisasi request
// tanpa round-trip ke database.
type SessionUser struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type sessionPayload struct {
	SessionUser
	IssuedAtMillis int64  `json:"iat_ms"`
	Nonce          string `json:"nonce"`
}

// EncodeSessionToken membuat token bentuk base64(payload) + "." + base64(hmac).
func EncodeSessionToken(u SessionUser) (string, error) {
	return encodeSessionTokenAt(u, time.Now())
}

func encodeSessionTokenAt(u SessionUser, issuedAt time.Time) (string, error) {
	// nonce acak 16 byte: dua login user yang sama tetap menghasilkan
	// token berbeda (payload identik tidak bisa direkonstruksi ulang)
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	raw, err := json.Marshal(sessionPayload{
		SessionUser:    u,
		IssuedAtMillis: issuedAt.UnixMilli(),
		Nonce:          hex.EncodeToString(nonce),
	})
	if err != nil {
		return "", err
	}

	b64 := base64.RawURLEncoding.EncodeToString(raw)
	sig := signSessionPayload(b64)
	return b64 + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// DecodeSessionToken memverifikasi dan membongkar token.
func DecodeSessionToken(token string) (*SessionUser, error) {
	return decodeSessionTokenAt(token, time.Now())
}

func decodeSessionTokenAt(token string, now time.Time) (*SessionUser, error) {
	idx := strings.LastIndex(token, ".")
	if idx <= 0 || idx == len(token)-1 {
		return nil, ErrInvalidToken
	}
	b64, sigPart := token[:idx], token[idx+1:]

	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, ErrInvalidToken
	}
	// hmac.Equal wajib: perbandingan == yang short-circuit membocorkan
	// posisi byte pertama yang beda lewat timing
	if !hmac.Equal(sig, signSessionPayload(b64)) {
		return nil, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(b64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ErrInvalidToken
	}
	if p.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	if now.UnixMilli()-p.IssuedAtMillis > SessionTTL.Milliseconds() {
		return nil, ErrInvalidToken
	}

	su := p.SessionUser
	return &su, nil
}

func signSessionPayload(b64 string) []byte {
	m := hmac.New(sha256.New, []byte(configs.AuthTokenSecret))
	m.Write([]byte(b64))
	return m.Sum(nil)
}
