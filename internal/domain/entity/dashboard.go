package entity

import "github.com/shopspring/decimal"

// DashboardStats totales precalculados por el backend.
type DashboardStats struct {
	TotalCustomers int
	TotalProducts  int
	TotalOrders    int
	PendingOrders  int
	TotalRevenue   decimal.Decimal
}

// TrendPoint punto de la serie de ventas (un período, normalmente un mes).
type TrendPoint struct {
	Period  string
	Revenue decimal.Decimal
	Orders  int
}

// TopProduct producto del ranking por ingresos.
type TopProduct struct {
	Code     string
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// TopCustomer cliente del ranking por pagos.
type TopCustomer struct {
	Number    int
	Name      string
	TotalPaid decimal.Decimal
}
