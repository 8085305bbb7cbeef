package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

type statsWire struct {
	TotalCustomers int   `json:"totalCustomers"`
	TotalProducts  int   `json:"totalProducts"`
	TotalOrders    int   `json:"totalOrders"`
	PendingOrders  int   `json:"pendingOrders"`
	TotalRevenue   money `json:"totalRevenue"`
}

type trendWire struct {
	Period  string `json:"period"`
	Revenue money  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type topProductWire struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Revenue     money  `json:"revenue"`
}

type topCustomerWire struct {
	CustomerNumber int    `json:"customerNumber"`
	CustomerName   string `json:"customerName"`
	TotalPaid      money  `json:"totalPaid"`
}

type dashboardRepository struct {
	c *Client
}

// NewDashboardRepository endpoints de agregación del dashboard (solo lectura).
func NewDashboardRepository(c *Client) repository.DashboardRepository {
	return &dashboardRepository{c: c}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var w statsWire
	if err := r.c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &w); err != nil {
		return nil, err
	}
	return &entity.DashboardStats{
		TotalCustomers: w.TotalCustomers,
		TotalProducts:  w.TotalProducts,
		TotalOrders:    w.TotalOrders,
		PendingOrders:  w.PendingOrders,
		TotalRevenue:   w.TotalRevenue.Decimal,
	}, nil
}

func (r *dashboardRepository) SalesTrend(ctx context.Context) ([]entity.TrendPoint, error) {
	raw, err := r.c.doRaw(ctx, http.MethodGet, "/dashboard/sales-trend", nil, nil)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[trendWire](raw)
	if err != nil {
		return nil, fmt.Errorf("backend: GET /dashboard/sales-trend: %w: %v", domain.ErrDecode, err)
	}
	out := make([]entity.TrendPoint, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.TrendPoint{Period: w.Period, Revenue: w.Revenue.Decimal, Orders: w.Orders})
	}
	return out, nil
}

func (r *dashboardRepository) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	raw, err := r.c.doRaw(ctx, http.MethodGet, "/dashboard/top-products", limitQuery(limit), nil)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[topProductWire](raw)
	if err != nil {
		return nil, fmt.Errorf("backend: GET /dashboard/top-products: %w: %v", domain.ErrDecode, err)
	}
	out := make([]entity.TopProduct, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.TopProduct{Code: w.ProductCode, Name: w.ProductName, Quantity: w.Quantity, Revenue: w.Revenue.Decimal})
	}
	return out, nil
}

func (r *dashboardRepository) TopCustomers(ctx context.Context, limit int) ([]entity.TopCustomer, error) {
	raw, err := r.c.doRaw(ctx, http.MethodGet, "/dashboard/top-customers", limitQuery(limit), nil)
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[topCustomerWire](raw)
	if err != nil {
		return nil, fmt.Errorf("backend: GET /dashboard/top-customers: %w: %v", domain.ErrDecode, err)
	}
	out := make([]entity.TopCustomer, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.TopCustomer{Number: w.CustomerNumber, Name: w.CustomerName, TotalPaid: w.TotalPaid.Decimal})
	}
	return out, nil
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
