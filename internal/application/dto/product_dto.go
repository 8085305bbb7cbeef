package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code            string          `json:"product_code"`
	Name            string          `json:"product_name"`
	Line            string          `json:"product_line"`
	Scale           string          `json:"product_scale"`
	Vendor          string          `json:"product_vendor"`
	Description     string          `json:"product_description"`
	QuantityInStock int             `json:"quantity_in_stock"`
	BuyPrice        decimal.Decimal `json:"buy_price"`
	MSRP            decimal.Decimal `json:"msrp"`
}

// NewProductResponse mapea la entidad.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		Code:            p.Code,
		Name:            p.Name,
		Line:            p.Line,
		Scale:           p.Scale,
		Vendor:          p.Vendor,
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
		BuyPrice:        p.BuyPrice,
		MSRP:            p.MSRP,
	}
}

// ProductLineResponse línea de productos para el selector del formulario.
type ProductLineResponse struct {
	Name        string `json:"product_line"`
	Description string `json:"description"`
}
