package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// BuyPrice es el costo de compra; MSRP el precio sugerido de venta.
type Product struct {
	Code            string
	Name            string
	Line            string // productLine; el backend a veces lo anida como objeto
	Scale           string
	Vendor          string
	Description     string
	QuantityInStock int
	BuyPrice        decimal.Decimal
	MSRP            decimal.Decimal
}

// Key clave de selección: el código del producto.
func (p Product) Key() string { return p.Code }

// ProductLine línea de productos (categoría).
type ProductLine struct {
	Name        string
	Description string
}

// Key clave de la línea.
func (l ProductLine) Key() string { return l.Name }
