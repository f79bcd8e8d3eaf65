package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muaku_backend/internals/configs"
	authService "muaku_backend/internals/features/users/auth/service"
)

func init() {
	configs.AuthTokenSecret = "rahasia-untuk-test"
}

func newGuardedApp() *fiber.App {
	app := fiber.New()

	guard := PageGuard()
	app.Get("/", guard, func(c *fiber.Ctx) error { return c.SendString("root") })
	app.Get(LoginPath, guard, func(c *fiber.Ctx) error { return c.SendString("login page") })
	app.Get(DashboardPath, guard, func(c *fiber.Ctx) error {
		su, ok := SessionFromLocals(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString("halo " + su.UserName)
	})

	app.Get("/api/ping", APIGuard(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	app.Get("/api/owner-only", APIGuard(), RequireRole("owner"), func(c *fiber.Ctx) error {
		return c.SendString("rahasia owner")
	})

	return app
}

func tokenFor(t *testing.T, role string) (authService.SessionUser, string) {
	t.Helper()
	su := authService.SessionUser{
		UserID:   uuid.New(),
		UserName: "vivi",
		Email:    "vivi@muaku.id",
		FullName: "Vivi Rahma",
		Role:     role,
	}
	token, err := authService.EncodeSessionToken(su)
	require.NoError(t, err)
	return su, token
}

func doRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAPIGuardWithoutCookie(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, "/api/ping", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAPIGuardWithGarbageCookie(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, "/api/ping", "bukan.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAPIGuardWithValidCookie(t *testing.T) {
	app := newGuardedApp()
	_, token := tokenFor(t, "admin")
	resp := doRequest(t, app, "/api/ping", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newGuardedApp()

	_, adminToken := tokenFor(t, "admin")
	resp := doRequest(t, app, "/api/owner-only", adminToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	_, ownerToken := tokenFor(t, "owner")
	resp = doRequest(t, app, "/api/owner-only", ownerToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPageGuardProtectedRedirectsAnon(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, DashboardPath, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath+"?next=%2Fdashboard", resp.Header.Get("Location"))
}

func TestPageGuardProtectedAllowsAuthed(t *testing.T) {
	app := newGuardedApp()
	_, token := tokenFor(t, "admin")
	resp := doRequest(t, app, DashboardPath, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPageGuardLoginRedirectsAuthed(t *testing.T) {
	app := newGuardedApp()
	_, token := tokenFor(t, "admin")
	resp := doRequest(t, app, LoginPath, token)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, DashboardPath, resp.Header.Get("Location"))
}

func TestPageGuardLoginLoopMarkerBreaksRedirect(t *testing.T) {
	app := newGuardedApp()
	_, token := tokenFor(t, "admin")

	// navigasi dashboard → login membawa marker; walau masih authed,
	// halaman login harus tetap bisa dibuka (tidak bolak-balik redirect)
	resp := doRequest(t, app, LoginPath+"?from=dashboard", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPageGuardLoginAllowsAnon(t *testing.T) {
	app := newGuardedApp()
	resp := doRequest(t, app, LoginPath, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPageGuardRootRedirects(t *testing.T) {
	app := newGuardedApp()

	resp := doRequest(t, app, "/", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get("Location"))

	_, token := tokenFor(t, "admin")
	resp = doRequest(t, app, "/", token)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, DashboardPath, resp.Header.Get("Location"))
}

func TestPageGuardNextParamPreservesTarget(t *testing.T) {
	app := newGuardedApp()
	app.Get("/orders/detail", PageGuard(), func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp := doRequest(t, app, "/orders/detail?tab=payments", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath+"?next=%2Forders%2Fdetail%3Ftab%3Dpayments", resp.Header.Get("Location"))
}

func TestSetSessionCookieAttributes(t *testing.T) {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		SetSessionCookie(c, "token-dummy")
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/set", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "token-dummy", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, int(CookieMaxAge.Seconds()), sessionCookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
	// di development cookie tidak dipaksa Secure (localhost tanpa TLS)
	assert.False(t, sessionCookie.Secure)
}

func TestClearSessionCookieExpires(t *testing.T) {
	app := fiber.New()
	app.Get("/clear", func(c *fiber.Ctx) error {
		ClearSessionCookie(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/clear", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.Expires.Before(time.Now()))
}
