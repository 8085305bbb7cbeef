package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrSessionExpired = fmt.Errorf("sesión expirada: %w", ErrUnauthorized)
	ErrForbidden      = errors.New("acceso denegado")
	ErrBackend        = errors.New("error del servidor")
	ErrNetwork        = errors.New("sin respuesta del servidor")
	ErrDecode         = errors.New("respuesta con formato inválido")
	ErrUnsupported    = errors.New("operación no soportada por el endpoint")
	ErrPartialFailure = errors.New("algunas operaciones fallaron")
)

// APIError error HTTP devuelto por el backend. Unwrap devuelve el sentinel que
// corresponde al status para poder usar errors.Is en las capas superiores.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Unwrap mapea el status a un sentinel de dominio.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return ErrInvalidInput
	case e.Status == http.StatusUnauthorized:
		return ErrSessionExpired
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status >= 500:
		return ErrBackend
	}
	return nil
}

// FriendlyMessage reescribe los status conocidos en mensajes para el usuario.
func FriendlyMessage(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "la solicitud tiene datos inválidos"
	case status == http.StatusUnauthorized:
		return "su sesión expiró, inicie sesión nuevamente"
	case status == http.StatusForbidden:
		return "no tiene permisos para realizar esta acción"
	case status == http.StatusNotFound:
		return "el recurso solicitado no existe"
	case status == http.StatusConflict:
		return "el registro ya existe o fue modificado"
	case status == http.StatusUnprocessableEntity:
		return "los datos enviados no pasaron la validación"
	case status >= 500:
		return "error interno del servidor, intente más tarde"
	}
	return http.StatusText(status)
}

// ValidationError falla de validación de formulario por campo.
type ValidationError struct {
	Fields map[string]string // campo -> motivo
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
