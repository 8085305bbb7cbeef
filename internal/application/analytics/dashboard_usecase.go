// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

const dashboardTop = 5 // elementos en los rankings del dashboard

// DashboardUseCase arma el resumen de la pantalla principal.
//
// Fuente de datos: DashboardRepository (endpoints read-only del backend).
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. Stats                 → totales
//  2. SalesTrend            → serie de ventas
//  3. TopProducts(top 5)    → ranking de productos
//  4. TopCustomers(top 5)   → ranking de clientes
//
// Si alguna falla, falla el resumen completo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type statsResult struct {
		stats *entity.DashboardStats
		err   error
	}
	type trendResult struct {
		points []entity.TrendPoint
		err    error
	}
	type productsResult struct {
		items []entity.TopProduct
		err   error
	}
	type customersResult struct {
		items []entity.TopCustomer
		err   error
	}

	statsCh := make(chan statsResult, 1)
	trendCh := make(chan trendResult, 1)
	productsCh := make(chan productsResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		s, err := uc.repo.Stats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		p, err := uc.repo.SalesTrend(ctx)
		trendCh <- trendResult{p, err}
	}()
	go func() {
		items, err := uc.repo.TopProducts(ctx, dashboardTop)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.repo.TopCustomers(ctx, dashboardTop)
		customersCh <- customersResult{items, err}
	}()

	stats := <-statsCh
	trend := <-trendCh
	products := <-productsCh
	customers := <-customersCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", stats.err)
	}
	if trend.err != nil {
		return nil, fmt.Errorf("dashboard: tendencia de ventas: %w", trend.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", products.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", customers.err)
	}

	out := &dto.DashboardSummaryDTO{
		SalesTrend:   make([]dto.TrendPointDTO, 0, len(trend.points)),
		TopProducts:  make([]dto.TopProductDTO, 0, dashboardTop),
		TopCustomers: make([]dto.TopCustomerDTO, 0, dashboardTop),
		DateLabel:    monthLabel(uc.now()),
	}
	if s := stats.stats; s != nil {
		out.Stats = dto.StatsDTO{
			TotalCustomers: s.TotalCustomers,
			TotalProducts:  s.TotalProducts,
			TotalOrders:    s.TotalOrders,
			PendingOrders:  s.PendingOrders,
			TotalRevenue:   s.TotalRevenue.Round(2),
		}
	}
	for _, p := range trend.points {
		out.SalesTrend = append(out.SalesTrend, dto.TrendPointDTO{Period: p.Period, Revenue: p.Revenue.Round(2), Orders: p.Orders})
	}
	// el backend puede ignorar ?limit; se recorta aquí
	for i, p := range products.items {
		if i == dashboardTop {
			break
		}
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductCode: p.Code, ProductName: p.Name, Quantity: p.Quantity, Revenue: p.Revenue.Round(2),
		})
	}
	for i, c := range customers.items {
		if i == dashboardTop {
			break
		}
		out.TopCustomers = append(out.TopCustomers, dto.TopCustomerDTO{
			CustomerNumber: c.Number, CustomerName: c.Name, TotalPaid: c.TotalPaid.Round(2),
		})
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
