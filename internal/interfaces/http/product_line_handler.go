package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// ProductLineHandler catálogo de líneas para el selector del formulario de producto.
type ProductLineHandler struct {
	repo repository.ProductLineRepository
}

// NewProductLineHandler construye el handler.
func NewProductLineHandler(repo repository.ProductLineRepository) *ProductLineHandler {
	return &ProductLineHandler{repo: repo}
}

// List GET /api/productlines
func (h *ProductLineHandler) List(c *fiber.Ctx) error {
	lines, err := h.repo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.ProductLineResponse{Name: l.Name, Description: l.Description})
	}
	return c.JSON(out)
}
