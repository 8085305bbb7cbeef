package backend

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// paymentIDWire clave compuesta anidada que exige el backend: {"id":{...}}.
type paymentIDWire struct {
	CustomerNumber int    `json:"customerNumber"`
	CheckNumber    string `json:"checkNumber"`
}

// paymentWire forma JSON de /payments. Algunos listados envían la clave plana
// (customerNumber/checkNumber a nivel raíz) en lugar de "id".
type paymentWire struct {
	ID             *paymentIDWire `json:"id"`
	CustomerNumber *int           `json:"customerNumber,omitempty"`
	CheckNumber    string         `json:"checkNumber,omitempty"`
	PaymentDate    wireDate       `json:"paymentDate"`
	Amount         money          `json:"amount"`
}

func paymentFromWire(w paymentWire) (entity.Payment, error) {
	p := entity.Payment{
		PaymentDate: w.PaymentDate.Time,
		Amount:      w.Amount.Decimal,
	}
	switch {
	case w.ID != nil:
		p.CustomerNumber = w.ID.CustomerNumber
		p.CheckNumber = w.ID.CheckNumber
	case w.CustomerNumber != nil:
		p.CustomerNumber = *w.CustomerNumber
		p.CheckNumber = w.CheckNumber
	default:
		return p, fmt.Errorf("pago sin clave")
	}
	return p, nil
}

// paymentToWire siempre envía la clave anidada en "id".
func paymentToWire(p entity.Payment) paymentWire {
	return paymentWire{
		ID:          &paymentIDWire{CustomerNumber: p.CustomerNumber, CheckNumber: p.CheckNumber},
		PaymentDate: wireDate{p.PaymentDate},
		Amount:      money{p.Amount},
	}
}

func paymentItemPath(key string) (string, error) {
	customerNumber, checkNumber, err := entity.ParsePaymentKey(key)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return "/payments/" + strconv.Itoa(customerNumber) + "/" + url.PathEscape(checkNumber), nil
}

// NewPaymentRepository GET/POST /payments, PUT/DELETE /payments/{customerId}/{checkNo}.
// El backend no expone GET de un pago individual.
func NewPaymentRepository(c *Client) repository.PaymentRepository {
	return &restResource[entity.Payment, paymentWire]{
		c:        c,
		path:     "/payments",
		verbs:    verbCreate | verbUpdate | verbDelete,
		toEntity: paymentFromWire,
		toWire:   paymentToWire,
		itemPath: paymentItemPath,
	}
}
