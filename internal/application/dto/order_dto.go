package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// OrderResponse salida de un pedido. Fechas en formato YYYY-MM-DD.
type OrderResponse struct {
	Number         int    `json:"order_number"`
	OrderDate      string `json:"order_date"`
	RequiredDate   string `json:"required_date"`
	ShippedDate    string `json:"shipped_date,omitempty"`
	Status         string `json:"status"`
	Comments       string `json:"comments,omitempty"`
	CustomerNumber int    `json:"customer_number"`
	CustomerName   string `json:"customer_name,omitempty"`
}

// NewOrderResponse mapea la entidad.
func NewOrderResponse(o entity.Order) OrderResponse {
	r := OrderResponse{
		Number:         o.Number,
		OrderDate:      o.OrderDate.Format(entity.DateLayout),
		RequiredDate:   o.RequiredDate.Format(entity.DateLayout),
		Status:         o.Status,
		Comments:       o.Comments,
		CustomerNumber: o.CustomerNumber,
		CustomerName:   o.CustomerName,
	}
	if o.ShippedDate != nil {
		r.ShippedDate = o.ShippedDate.Format(entity.DateLayout)
	}
	return r
}

// PaymentResponse salida de un pago. Key es la clave compuesta cliente/cheque.
type PaymentResponse struct {
	Key            string          `json:"key"`
	CustomerNumber int             `json:"customer_number"`
	CheckNumber    string          `json:"check_number"`
	PaymentDate    string          `json:"payment_date"`
	Amount         decimal.Decimal `json:"amount"`
}

// NewPaymentResponse mapea la entidad.
func NewPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		Key:            p.Key(),
		CustomerNumber: p.CustomerNumber,
		CheckNumber:    p.CheckNumber,
		PaymentDate:    p.PaymentDate.Format(entity.DateLayout),
		Amount:         p.Amount,
	}
}
