package backend

import (
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

type orderWire struct {
	OrderNumber    int          `json:"orderNumber"`
	OrderDate      wireDate     `json:"orderDate"`
	RequiredDate   wireDate     `json:"requiredDate"`
	ShippedDate    *wireDate    `json:"shippedDate"`
	Status         string       `json:"status"`
	Comments       optString    `json:"comments"`
	Customer       *customerRef `json:"customer"`
	CustomerNumber *customerRef `json:"customerNumber,omitempty"`
}

func orderFromWire(w orderWire) (entity.Order, error) {
	o := entity.Order{
		Number:       w.OrderNumber,
		OrderDate:    w.OrderDate.Time,
		RequiredDate: w.RequiredDate.Time,
		Status:       w.Status,
		Comments:     string(w.Comments),
	}
	if w.ShippedDate != nil && !w.ShippedDate.IsZero() {
		t := w.ShippedDate.Time
		o.ShippedDate = &t
	}
	ref := w.Customer
	if ref == nil {
		ref = w.CustomerNumber
	}
	if ref != nil {
		o.CustomerNumber = ref.CustomerNumber
		o.CustomerName = ref.CustomerName
	}
	return o, nil
}

func orderToWire(o entity.Order) orderWire {
	w := orderWire{
		OrderNumber:  o.Number,
		OrderDate:    wireDate{o.OrderDate},
		RequiredDate: wireDate{o.RequiredDate},
		Status:       o.Status,
		Comments:     optString(o.Comments),
		Customer:     &customerRef{CustomerNumber: o.CustomerNumber},
	}
	if o.ShippedDate != nil {
		w.ShippedDate = &wireDate{*o.ShippedDate}
	}
	return w
}

// NewOrderRepository GET/POST /orders, GET/PUT /orders/{id}. El backend no expone DELETE.
func NewOrderRepository(c *Client) repository.OrderRepository {
	return &restResource[entity.Order, orderWire]{
		c:        c,
		path:     "/orders",
		verbs:    verbGet | verbCreate | verbUpdate,
		toEntity: orderFromWire,
		toWire:   orderToWire,
		itemPath: defaultItemPath("/orders"),
	}
}
