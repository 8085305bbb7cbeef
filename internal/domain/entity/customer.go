package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente.
// SalesRep puede venir vacío (cliente sin representante asignado).
type Customer struct {
	Number           int
	Name             string
	ContactLastName  string
	ContactFirstName string
	Phone            string
	AddressLine1     string
	AddressLine2     string
	City             string
	State            string
	PostalCode       string
	Country          string
	SalesRep         *EmployeeRef
	CreditLimit      decimal.Decimal
}

// Key clave de selección: el número de cliente.
func (c Customer) Key() string { return strconv.Itoa(c.Number) }

// ContactName nombre completo del contacto.
func (c Customer) ContactName() string {
	switch {
	case c.ContactFirstName == "":
		return c.ContactLastName
	case c.ContactLastName == "":
		return c.ContactFirstName
	}
	return c.ContactFirstName + " " + c.ContactLastName
}

// EmployeeRef referencia a un empleado. Algunos endpoints solo envían el número;
// en ese caso FirstName/LastName quedan vacíos.
type EmployeeRef struct {
	Number    int
	FirstName string
	LastName  string
}

// Label texto para mostrar la referencia.
func (r *EmployeeRef) Label() string {
	if r == nil {
		return ""
	}
	if r.FirstName == "" && r.LastName == "" {
		return strconv.Itoa(r.Number)
	}
	return r.FirstName + " " + r.LastName
}
