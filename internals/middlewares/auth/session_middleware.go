// internals/middlewares/auth/session_middleware.go
package auth

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"muaku_backend/internals/configs"
	authService "muaku_backend/internals/features/users/auth/service"
	helper "muaku_backend/internals/helpers"
)

const (
	CookieName = "auth_token"

	// Umur cookie sengaja lebih panjang dari TTL token (24 jam): cookie yang
	// masih nempel tapi tokennya expired diperlakukan sama dengan tidak ada sesi.
	CookieMaxAge = 7 * 24 * time.Hour

	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	// Marker one-shot untuk memutus loop redirect login↔dashboard.
	// Navigasi dari dashboard ke halaman login membawa ?from=dashboard;
	// request itu dibiarkan lewat walau user masih terautentikasi.
	loopMarkerParam = "from"
	loopMarkerValue = "dashboard"
)

// SetSessionCookie dipanggil controller login setelah token diterbitkan.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
		// Max-Age negatif tidak dikirim fasthttp; pakai Expires lampau
		Expires: time.Now().Add(-time.Hour),
	})
}

// sessionFromRequest membaca cookie dan menjalankan decode token.
// Token absen, rusak, signature salah, atau expired = sama-sama tanpa sesi;
// klien tidak pernah diberi tahu bedanya.
func sessionFromRequest(c *fiber.Ctx) (*authService.SessionUser, bool) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return nil, false
	}
	su, err := authService.DecodeSessionToken(raw)
	if err != nil {
		return nil, false
	}
	return su, true
}

func storeSession(c *fiber.Ctx, su *authService.SessionUser) {
	c.Locals("session_user", su)
	c.Locals("user_id", su.UserID.String())
	c.Locals("user_role", su.Role)
}

// SessionFromLocals dipakai controller di belakang APIGuard/PageGuard.
func SessionFromLocals(c *fiber.Ctx) (*authService.SessionUser, bool) {
	su, ok := c.Locals("session_user").(*authService.SessionUser)
	return su, ok
}

// PageGuard menjaga route navigasi (halaman). Kebijakan murni fungsi dari
// (path, status sesi):
//
//	/login    : authed → redirect dashboard (kecuali marker loop), anon → lewat
//	/         : authed → redirect dashboard, anon → redirect login
//	lainnya   : authed → lewat, anon → redirect login?next=<path asal>
func PageGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		su, authed := sessionFromRequest(c)
		path := c.Path()

		switch path {
		case LoginPath:
			if authed && c.Query(loopMarkerParam) != loopMarkerValue {
				return c.Redirect(DashboardPath, fiber.StatusFound)
			}
			return c.Next()
		case "/":
			if authed {
				return c.Redirect(DashboardPath, fiber.StatusFound)
			}
			return c.Redirect(LoginPath, fiber.StatusFound)
		default:
			if !authed {
				return c.Redirect(LoginPath+"?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
			}
			storeSession(c, su)
			return c.Next()
		}
	}
}

// APIGuard menjaga endpoint programatik: gagal = 401 generic, tidak pernah
// redirect dan tidak pernah menjelaskan kenapa.
func APIGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		su, ok := sessionFromRequest(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		storeSession(c, su)
		return c.Next()
	}
}

// RequireRole membatasi endpoint ke role tertentu. Dipasang setelah APIGuard.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
}
