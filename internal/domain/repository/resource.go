package repository

import (
	"context"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// ResourceRepository define el puerto hacia un recurso REST de colección.
// Las implementaciones devuelven domain.ErrUnsupported para los verbos que el
// endpoint no expone (p. ej. DELETE de pedidos).
type ResourceRepository[T entity.Keyed] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, key string, item T) (*T, error)
	Delete(ctx context.Context, key string) error
}

// Repositorios concretos por entidad.
type (
	CustomerRepository = ResourceRepository[entity.Customer]
	ProductRepository  = ResourceRepository[entity.Product]
	OrderRepository    = ResourceRepository[entity.Order]
	PaymentRepository  = ResourceRepository[entity.Payment]
	EmployeeRepository = ResourceRepository[entity.Employee]
	OfficeRepository   = ResourceRepository[entity.Office]
)

// ProductLineRepository catálogo de líneas de producto (solo lectura).
type ProductLineRepository interface {
	List(ctx context.Context) ([]entity.ProductLine, error)
}

// Resources puertos de todos los recursos listables.
type Resources struct {
	Customers CustomerRepository
	Products  ProductRepository
	Orders    OrderRepository
	Payments  PaymentRepository
	Employees EmployeeRepository
	Offices   OfficeRepository
}
