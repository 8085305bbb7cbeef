// Command adminctl es el cliente de terminal del panel de administración:
// login, listados, exportación, altas/bajas, resumen y navegador interactivo.
package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(exitCode(err))
	}
}

// describe mensaje para el usuario. La sesión expirada equivale al
// "redirigir al login" de la UI web.
func describe(err error) string {
	var verr *domain.ValidationError
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "sesión expirada o inexistente: ejecute 'adminctl login'"
	case errors.As(err, &verr):
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range slices.Sorted(maps.Keys(verr.Fields)) {
			fields = append(fields, f+": "+verr.Fields[f])
		}
		return "datos inválidos: " + strings.Join(fields, "; ")
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return domain.FriendlyMessage(apiErr.Status)
	case errors.Is(err, domain.ErrUnsupported):
		return "el backend no permite esta operación para la entidad"
	case errors.Is(err, export.ErrUnsupportedFormat):
		return "formato no soportado: use pdf o xlsx"
	case errors.Is(err, domain.ErrNetwork):
		return "no se pudo conectar con el backend: " + err.Error()
	}
	return err.Error()
}

// exitCode 2 para sesión (el script puede reintentar tras login), 1 el resto.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrUnauthorized) {
		return 2
	}
	return 1
}
