package repository

import (
	"context"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// DashboardRepository define el puerto de lectura de los agregados del dashboard.
// Todas las consultas son read-only y precalculadas por el backend.
type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
	SalesTrend(ctx context.Context) ([]entity.TrendPoint, error)
	TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error)
	TopCustomers(ctx context.Context, limit int) ([]entity.TopCustomer, error)
}
