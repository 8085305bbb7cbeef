package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/classicmodels-admin/internal/application/analytics"
	"github.com/jhoicas/classicmodels-admin/internal/application/auth"
	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/form"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Managers     *usecase.Set
	AuthUC       *auth.AuthUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ProductLines repository.ProductLineRepository
	Exporter     *export.UseCase
	Lists        ListDefaults
	JWTSecret    string
	WriteRoles   []string // vacío = cualquier sesión puede escribir
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/check-email", authHandler.CheckEmail)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/validate", authHandler.Validate)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	productLineHandler := NewProductLineHandler(deps.ProductLines)
	protected.Get("/productlines", productLineHandler.List)

	write := RequireRole(deps.WriteRoles...)
	m := deps.Managers

	NewResourceHandler(Resource[entity.Customer, dto.CustomerResponse]{
		Manager: m.Customers, Title: "Clientes",
		Parse: form.ParseCustomer, Response: dto.NewCustomerResponse,
		KeyParts: []string{"customerNumber"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Customers), write)

	NewResourceHandler(Resource[entity.Product, dto.ProductResponse]{
		Manager: m.Products, Title: "Productos",
		Parse: form.ParseProduct, Response: dto.NewProductResponse,
		KeyParts: []string{"productCode"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Products), write)

	NewResourceHandler(Resource[entity.Order, dto.OrderResponse]{
		Manager: m.Orders, Title: "Pedidos",
		Parse: form.ParseOrder, Response: dto.NewOrderResponse,
		KeyParts: []string{"orderNumber"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Orders), write)

	NewResourceHandler(Resource[entity.Payment, dto.PaymentResponse]{
		Manager: m.Payments, Title: "Pagos",
		Parse: form.ParsePayment, Response: dto.NewPaymentResponse,
		KeyParts: []string{"customerNumber", "checkNumber"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Payments), write)

	NewResourceHandler(Resource[entity.Employee, dto.EmployeeResponse]{
		Manager: m.Employees, Title: "Empleados",
		Parse: form.ParseEmployee, Response: dto.NewEmployeeResponse,
		KeyParts: []string{"employeeNumber"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Employees), write)

	NewResourceHandler(Resource[entity.Office, dto.OfficeResponse]{
		Manager: m.Offices, Title: "Oficinas",
		Parse: form.ParseOffice, Response: dto.NewOfficeResponse,
		KeyParts: []string{"officeCode"},
	}, deps.Exporter, deps.Lists).Register(protected.Group("/"+usecase.Offices), write)
}
