package backend

import (
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// customerWire forma JSON de /customers. El representante llega como
// salesRepEmployee (objeto o número) o como salesRepEmployeeNumber plano.
type customerWire struct {
	CustomerNumber         int          `json:"customerNumber"`
	CustomerName           string       `json:"customerName"`
	ContactLastName        string       `json:"contactLastName"`
	ContactFirstName       string       `json:"contactFirstName"`
	Phone                  string       `json:"phone"`
	AddressLine1           string       `json:"addressLine1"`
	AddressLine2           optString    `json:"addressLine2"`
	City                   string       `json:"city"`
	State                  optString    `json:"state"`
	PostalCode             optString    `json:"postalCode"`
	Country                string       `json:"country"`
	SalesRepEmployee       *employeeRef `json:"salesRepEmployee"`
	SalesRepEmployeeNumber *employeeRef `json:"salesRepEmployeeNumber,omitempty"`
	CreditLimit            money        `json:"creditLimit"`
}

func customerFromWire(w customerWire) (entity.Customer, error) {
	c := entity.Customer{
		Number:           w.CustomerNumber,
		Name:             w.CustomerName,
		ContactLastName:  w.ContactLastName,
		ContactFirstName: w.ContactFirstName,
		Phone:            w.Phone,
		AddressLine1:     w.AddressLine1,
		AddressLine2:     string(w.AddressLine2),
		City:             w.City,
		State:            string(w.State),
		PostalCode:       string(w.PostalCode),
		Country:          w.Country,
		CreditLimit:      w.CreditLimit.Decimal,
	}
	rep := w.SalesRepEmployee
	if rep == nil {
		rep = w.SalesRepEmployeeNumber
	}
	if rep != nil {
		c.SalesRep = &entity.EmployeeRef{Number: rep.EmployeeNumber, FirstName: rep.FirstName, LastName: rep.LastName}
	}
	return c, nil
}

func customerToWire(c entity.Customer) customerWire {
	w := customerWire{
		CustomerNumber:   c.Number,
		CustomerName:     c.Name,
		ContactLastName:  c.ContactLastName,
		ContactFirstName: c.ContactFirstName,
		Phone:            c.Phone,
		AddressLine1:     c.AddressLine1,
		AddressLine2:     optString(c.AddressLine2),
		City:             c.City,
		State:            optString(c.State),
		PostalCode:       optString(c.PostalCode),
		Country:          c.Country,
		CreditLimit:      money{c.CreditLimit},
	}
	if c.SalesRep != nil {
		w.SalesRepEmployee = &employeeRef{EmployeeNumber: c.SalesRep.Number}
	}
	return w
}

// NewCustomerRepository GET/POST /customers, GET/PUT/DELETE /customers/{id}.
func NewCustomerRepository(c *Client) repository.CustomerRepository {
	return &restResource[entity.Customer, customerWire]{
		c:        c,
		path:     "/customers",
		verbs:    allVerbs,
		toEntity: customerFromWire,
		toWire:   customerToWire,
		itemPath: defaultItemPath("/customers"),
	}
}
