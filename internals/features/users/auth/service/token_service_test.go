package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muaku_backend/internals/configs"
)

func init() {
	configs.AuthTokenSecret = "rahasia-untuk-test"
}

func sampleSessionUser() SessionUser {
	return SessionUser{
		UserID:   uuid.New(),
		UserName: "vivi",
		Email:    "vivi@muaku.id",
		FullName: "Vivi Rahma",
		Role:     "owner",
	}
}

// ganti satu karakter supaya tokennya berubah tapi tetap "mirip"
func mutateCharAt(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestTokenRoundTrip(t *testing.T) {
	u := sampleSessionUser()

	token, err := EncodeSessionToken(u)
	require.NoError(t, err)
	require.Contains(t, token, ".")

	got, err := DecodeSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, u, *got)
}

func TestTokenUniquePerLogin(t *testing.T) {
	u := sampleSessionUser()

	t1, err := EncodeSessionToken(u)
	require.NoError(t, err)
	t2, err := EncodeSessionToken(u)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestTokenTamperedPayloadRejected(t *testing.T) {
	token, err := EncodeSessionToken(sampleSessionUser())
	require.NoError(t, err)

	tampered := mutateCharAt(token, 1)
	_, err = DecodeSessionToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTamperedSignatureRejected(t *testing.T) {
	token, err := EncodeSessionToken(sampleSessionUser())
	require.NoError(t, err)

	idx := strings.LastIndex(token, ".")
	tampered := mutateCharAt(token, idx+1)
	_, err = DecodeSessionToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := EncodeSessionToken(sampleSessionUser())
	require.NoError(t, err)

	old := configs.AuthTokenSecret
	configs.AuthTokenSecret = "secret-lain"
	defer func() { configs.AuthTokenSecret = old }()

	_, err = DecodeSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiryBoundary(t *testing.T) {
	u := sampleSessionUser()
	issuedAt := time.Now()

	token, err := encodeSessionTokenAt(u, issuedAt)
	require.NoError(t, err)

	// tepat di batas TTL masih sah
	got, err := decodeSessionTokenAt(token, issuedAt.Add(SessionTTL))
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	// satu milidetik lewat = expired
	_, err = decodeSessionTokenAt(token, issuedAt.Add(SessionTTL+time.Millisecond))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformedRejected(t *testing.T) {
	for _, tok := range []string{
		"",
		"tanpa-titik",
		"payload.",
		".signature",
		"bukan base64!!.juga bukan!!",
	} {
		_, err := DecodeSessionToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenEmptyUserRejected(t *testing.T) {
	token, err := EncodeSessionToken(SessionUser{})
	require.NoError(t, err)

	_, err = DecodeSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
