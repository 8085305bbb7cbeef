package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/auth"
	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
)

// AuthHandler maneja login, registro y validación de sesión contra el
// colaborador de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckEmail GET /api/auth/check-email?email=
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	out, err := h.uc.CheckEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate GET /api/auth/validate (protegido): usuario de la sesión vigente.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	user, err := h.uc.Validate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Logout POST /api/auth/logout. El servidor no guarda sesión: la UI descarta
// su token y vuelve al login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"redirect": LoginPath})
}
