package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

type productWire struct {
	ProductCode        string          `json:"productCode"`
	ProductName        string          `json:"productName"`
	ProductLine        *productLineRef `json:"productLine"`
	ProductScale       string          `json:"productScale"`
	ProductVendor      string          `json:"productVendor"`
	ProductDescription string          `json:"productDescription"`
	QuantityInStock    int             `json:"quantityInStock"`
	BuyPrice           money           `json:"buyPrice"`
	MSRP               money           `json:"MSRP"`
}

func productFromWire(w productWire) (entity.Product, error) {
	p := entity.Product{
		Code:            w.ProductCode,
		Name:            w.ProductName,
		Scale:           w.ProductScale,
		Vendor:          w.ProductVendor,
		Description:     w.ProductDescription,
		QuantityInStock: w.QuantityInStock,
		BuyPrice:        w.BuyPrice.Decimal,
		MSRP:            w.MSRP.Decimal,
	}
	if w.ProductLine != nil {
		p.Line = w.ProductLine.Code
	}
	return p, nil
}

func productToWire(p entity.Product) productWire {
	w := productWire{
		ProductCode:        p.Code,
		ProductName:        p.Name,
		ProductScale:       p.Scale,
		ProductVendor:      p.Vendor,
		ProductDescription: p.Description,
		QuantityInStock:    p.QuantityInStock,
		BuyPrice:           money{p.BuyPrice},
		MSRP:               money{p.MSRP},
	}
	if p.Line != "" {
		w.ProductLine = &productLineRef{codeRef{Code: p.Line}}
	}
	return w
}

// NewProductRepository GET/POST /products, GET/PUT/DELETE /products/{code}.
func NewProductRepository(c *Client) repository.ProductRepository {
	return &restResource[entity.Product, productWire]{
		c:        c,
		path:     "/products",
		verbs:    allVerbs,
		toEntity: productFromWire,
		toWire:   productToWire,
		itemPath: defaultItemPath("/products"),
	}
}

// ── Líneas de producto ────────────────────────────────────────────────────────

type productLineWire struct {
	ProductLine     string `json:"productLine"`
	TextDescription string `json:"textDescription"`
}

type productLineRepository struct {
	c *Client
}

// NewProductLineRepository GET /productlines (solo lectura, alimenta el formulario de producto).
func NewProductLineRepository(c *Client) repository.ProductLineRepository {
	return &productLineRepository{c: c}
}

func (r *productLineRepository) List(ctx context.Context) ([]entity.ProductLine, error) {
	raw, err := r.c.doRaw(ctx, http.MethodGet, "/productlines", nil, nil)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[productLineWire](raw)
	if err != nil {
		return nil, fmt.Errorf("backend: GET /productlines: %w: %v", domain.ErrDecode, err)
	}
	out := make([]entity.ProductLine, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.ProductLine{Name: w.ProductLine, Description: w.TextDescription})
	}
	return out, nil
}
