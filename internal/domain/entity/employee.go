package entity

import "strconv"

// Employee representa un empleado. ReportsTo es nil para la dirección general.
type Employee struct {
	Number     int
	LastName   string
	FirstName  string
	Extension  string
	Email      string
	OfficeCode string
	ReportsTo  *EmployeeRef
	JobTitle   string
}

// Key clave de selección: el número de empleado.
func (e Employee) Key() string { return strconv.Itoa(e.Number) }

// FullName nombre y apellido.
func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }
