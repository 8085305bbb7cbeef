package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contiene los totales, la tendencia de ventas y los Top-5 de productos y clientes.
type DashboardSummaryDTO struct {
	Stats        StatsDTO         `json:"stats"`
	SalesTrend   []TrendPointDTO  `json:"sales_trend"`
	TopProducts  []TopProductDTO  `json:"top_products"`
	TopCustomers []TopCustomerDTO `json:"top_customers"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// StatsDTO totales del negocio.
type StatsDTO struct {
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	TotalOrders    int             `json:"total_orders"`
	PendingOrders  int             `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// TrendPointDTO punto de la serie de ventas.
type TrendPointDTO struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// TopProductDTO producto del ranking por ingresos.
type TopProductDTO struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopCustomerDTO cliente del ranking por pagos.
type TopCustomerDTO struct {
	CustomerNumber int             `json:"customer_number"`
	CustomerName   string          `json:"customer_name"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}
