package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/classicmodels-admin/internal/application/analytics"
	"github.com/jhoicas/classicmodels-admin/internal/application/auth"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/classicmodels-admin/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/classicmodels-admin/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/classicmodels-admin/internal/interfaces/http"
	"github.com/jhoicas/classicmodels-admin/pkg/config"
	"github.com/jhoicas/classicmodels-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// El servidor no guarda sesión: cada request trae su Bearer y el cliente
	// lo toma del contexto.
	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout(),
		Logger:  log.Component("backend"),
	})

	collator := listview.NewCollator(cfg.List.Locale)
	managers := usecase.NewSet(backend.NewResources(client), collator,
		usecase.WithConcurrency(cfg.Backend.BulkConcurrency),
		usecase.WithLogger(log.Component("usecase")),
	)
	authUC := auth.NewAuthUseCase(backend.NewAuthRepository(client), nil)
	dashboardUC := appanalytics.NewDashboardUseCase(backend.NewDashboardRepository(client))
	exporter := export.NewUseCase(infrapdf.NewMarotoPDFGenerator(cfg.App.Name), infraxlsx.NewExcelizeGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // exportaciones grandes
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "ClassicModels Admin API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Managers:     managers,
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		ProductLines: backend.NewProductLineRepository(client),
		Exporter:     exporter,
		Lists: httpRouter.ListDefaults{
			PageSize:     cfg.List.PageSize,
			ColumnWindow: cfg.List.ColumnWindow,
		},
		JWTSecret:  cfg.JWT.Secret,
		WriteRoles: cfg.JWT.WriteRoles,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
