package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
)

// LoginPath ruta a la que la UI debe redirigir tras un 401.
const LoginPath = "/login"

// respondError traduce un error de las capas inferiores a dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "los datos enviados no pasaron la validación",
			Fields:  verr.Fields,
		}
	}

	// mensaje del backend (ya reescrito por el cliente) o el amigable por status
	message := func(status int) string {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return domain.FriendlyMessage(status)
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{
			Code: "SESSION_EXPIRED", Message: domain.FriendlyMessage(fiber.StatusUnauthorized), Redirect: LoginPath,
		}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: message(fiber.StatusForbidden)}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: message(fiber.StatusNotFound)}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: message(fiber.StatusConflict)}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: message(fiber.StatusBadRequest)}
	case errors.Is(err, export.ErrUnsupportedFormat):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato no soportado, use pdf o xlsx"}
	case errors.Is(err, domain.ErrUnsupported):
		return fiber.StatusMethodNotAllowed, dto.ErrorResponse{Code: "UNSUPPORTED", Message: domain.ErrUnsupported.Error()}
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: domain.ErrNetwork.Error()}
	case errors.Is(err, domain.ErrDecode):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_FORMAT", Message: domain.ErrDecode.Error()}
	case errors.Is(err, domain.ErrBackend):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: message(fiber.StatusInternalServerError)}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
