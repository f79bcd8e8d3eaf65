package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "muaku_backend/internals/features/users/auth/repository"
	"muaku_backend/internals/features/users/auth/service"
	helper "muaku_backend/internals/helpers"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	// Satu pesan & satu status untuk semua mode gagal
	su, err := service.VerifyCredentials(ac.DB, input.Username, input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := service.EncodeSessionToken(*su)
	if err != nil {
		log.Printf("[ERROR] gagal membuat session token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	authMiddleware.SetSessionCookie(c, token)

	return helper.JsonOK(c, "Login berhasil", su)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	authMiddleware.ClearSessionCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	su, ok := authMiddleware.SessionFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "", su)
}

// GET /api/users (owner only)
func (ac *AuthController) ListUsers(c *fiber.Ctx) error {
	users, err := authRepo.ListUsers(ac.DB)
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "", users)
}
