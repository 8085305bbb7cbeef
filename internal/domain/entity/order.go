package entity

import (
	"strconv"
	"time"
)

// Estados de pedido usados por el backend.
const (
	OrderInProcess = "In Process"
	OrderShipped   = "Shipped"
	OrderOnHold    = "On Hold"
	OrderCancelled = "Cancelled"
	OrderResolved  = "Resolved"
	OrderDisputed  = "Disputed"
)

// Order representa un pedido. ShippedDate es nil mientras no se despacha.
type Order struct {
	Number         int
	OrderDate      time.Time
	RequiredDate   time.Time
	ShippedDate    *time.Time
	Status         string
	Comments       string
	CustomerNumber int
	CustomerName   string // solo cuando el backend anida el cliente completo
}

// Key clave de selección: el número de pedido.
func (o Order) Key() string { return strconv.Itoa(o.Number) }
