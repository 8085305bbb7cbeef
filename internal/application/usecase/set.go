package usecase

import (
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// Nombres de recurso; coinciden con las rutas del backend y del servidor.
const (
	Customers = "customers"
	Products  = "products"
	Orders    = "orders"
	Payments  = "payments"
	Employees = "employees"
	Offices   = "offices"
)

// Names recursos listables, en el orden del menú.
var Names = []string{Customers, Products, Orders, Payments, Employees, Offices}

// Set un Manager por entidad, compartiendo collator y opciones.
type Set struct {
	Customers *Manager[entity.Customer]
	Products  *Manager[entity.Product]
	Orders    *Manager[entity.Order]
	Payments  *Manager[entity.Payment]
	Employees *Manager[entity.Employee]
	Offices   *Manager[entity.Office]
}

// NewSet construye todos los casos de uso.
func NewSet(r repository.Resources, col *listview.Collator, opts ...Option) *Set {
	return &Set{
		Customers: NewManager(Customers, r.Customers, CustomerSpec(), col, opts...),
		Products:  NewManager(Products, r.Products, ProductSpec(), col, opts...),
		Orders:    NewManager(Orders, r.Orders, OrderSpec(), col, opts...),
		Payments:  NewManager(Payments, r.Payments, PaymentSpec(), col, opts...),
		Employees: NewManager(Employees, r.Employees, EmployeeSpec(), col, opts...),
		Offices:   NewManager(Offices, r.Offices, OfficeSpec(), col, opts...),
	}
}
