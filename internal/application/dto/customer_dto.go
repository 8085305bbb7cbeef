package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// EmployeeRefResponse referencia a un empleado (representante, jefe).
type EmployeeRefResponse struct {
	Number    int    `json:"employee_number"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func newEmployeeRef(r *entity.EmployeeRef) *EmployeeRefResponse {
	if r == nil {
		return nil
	}
	return &EmployeeRefResponse{Number: r.Number, FirstName: r.FirstName, LastName: r.LastName}
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	Number           int                  `json:"customer_number"`
	Name             string               `json:"customer_name"`
	ContactLastName  string               `json:"contact_last_name"`
	ContactFirstName string               `json:"contact_first_name"`
	Phone            string               `json:"phone"`
	AddressLine1     string               `json:"address_line1"`
	AddressLine2     string               `json:"address_line2,omitempty"`
	City             string               `json:"city"`
	State            string               `json:"state,omitempty"`
	PostalCode       string               `json:"postal_code,omitempty"`
	Country          string               `json:"country"`
	SalesRep         *EmployeeRefResponse `json:"sales_rep,omitempty"`
	CreditLimit      decimal.Decimal      `json:"credit_limit"`
}

// NewCustomerResponse mapea la entidad.
func NewCustomerResponse(c entity.Customer) CustomerResponse {
	return CustomerResponse{
		Number:           c.Number,
		Name:             c.Name,
		ContactLastName:  c.ContactLastName,
		ContactFirstName: c.ContactFirstName,
		Phone:            c.Phone,
		AddressLine1:     c.AddressLine1,
		AddressLine2:     c.AddressLine2,
		City:             c.City,
		State:            c.State,
		PostalCode:       c.PostalCode,
		Country:          c.Country,
		SalesRep:         newEmployeeRef(c.SalesRep),
		CreditLimit:      c.CreditLimit,
	}
}
