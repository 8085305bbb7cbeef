package http

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
	"github.com/jhoicas/classicmodels-admin/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware exige un Bearer Token y lo deja en el UserContext para que el
// cliente del backend lo reenvíe.
//
// Con jwtSecret se verifican firma y expiración. Sin secret el token es opaco:
// solo se rechaza si es un JWT con exp vencido.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}

		var (
			claims *jwt.Claims
			err    error
		)
		if jwtSecret != "" {
			claims, err = jwt.Parse(jwtSecret, tokenString)
			if errors.Is(err, jwt.ErrExpired) {
				return unauthorized(c, "SESSION_EXPIRED", "su sesión expiró, inicie sesión nuevamente")
			}
			if err != nil {
				return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
			}
		} else {
			claims, err = jwt.Inspect(tokenString, time.Now())
			if errors.Is(err, jwt.ErrExpired) {
				return unauthorized(c, "SESSION_EXPIRED", "su sesión expiró, inicie sesión nuevamente")
			}
			// token opaco: se reenvía tal cual y decide el backend
		}

		if claims != nil {
			c.Locals(LocalUserID, claims.Subject)
			c.Locals(LocalEmail, claims.Email)
			c.Locals(LocalRole, claims.Role)
		}
		c.SetUserContext(backend.ContextWithToken(c.UserContext(), tokenString))
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Sin roles no restringe.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return unauthorized(c, "MISSING_ROLE", "el token no incluye rol")
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "no tiene permisos para realizar esta acción",
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: message, Redirect: LoginPath})
}

// GetUserID devuelve el subject del token (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return local(c, LocalUserID) }

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string { return local(c, LocalEmail) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return local(c, LocalRole) }

func local(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
