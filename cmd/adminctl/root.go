package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/classicmodels-admin/internal/application/analytics"
	"github.com/jhoicas/classicmodels-admin/internal/application/auth"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/classicmodels-admin/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/classicmodels-admin/internal/infrastructure/xlsx"
	"github.com/jhoicas/classicmodels-admin/pkg/config"
	"github.com/jhoicas/classicmodels-admin/pkg/logger"
)

// app dependencias compartidas por los subcomandos. Se arma en
// PersistentPreRunE, una vez leídos los flags globales.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// flags globales
	backendURL string
	tokenFile  string
	verbose    bool
	output     string

	cfg       *config.Config
	log       *logger.Logger
	tokens    *backend.FileTokenStore
	auth      *auth.AuthUseCase
	dashboard *appanalytics.DashboardUseCase
	exporter  *export.UseCase
	resources map[string]resource
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Administración de ClassicModels desde la terminal",
		Long: `adminctl administra clientes, productos, pedidos, pagos, empleados y
oficinas contra el backend REST de ClassicModels.

Inicie sesión con 'adminctl login'; el token queda guardado en TOKEN_FILE
(por defecto en el directorio de configuración del usuario).

Entidades: ` + strings.Join(usecase.Names, ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.backendURL, "backend", "", "URL base del backend (por defecto BACKEND_URL)")
	pf.StringVar(&a.tokenFile, "token-file", "", "archivo del token de sesión (por defecto TOKEN_FILE)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log de cada llamada al backend")
	pf.StringVarP(&a.output, "output", "o", "table", "formato de salida: table o json")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newListCmd(a),
		newExportCmd(a),
		newDeleteCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newBrowseCmd(a),
		newDashboardCmd(a),
	)
	return root
}

// setup lee la configuración y construye cliente, casos de uso y recursos.
func (a *app) setup() error {
	if a.output != "table" && a.output != "json" {
		return fmt.Errorf("formato de salida %q: use table o json", a.output)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.backendURL != "" {
		cfg.Backend.BaseURL = strings.TrimRight(a.backendURL, "/")
	}
	if a.tokenFile != "" {
		cfg.Backend.TokenFile = a.tokenFile
	}
	a.cfg = cfg

	// stdout queda para la salida del comando
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	a.log = logger.New(logger.Config{Env: "development", Level: level, Output: a.errOut})

	tokens, err := backend.NewFileTokenStore(cfg.Backend.TokenFile)
	if err != nil {
		return err
	}
	a.tokens = tokens

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout(),
		Tokens:  tokens,
		Logger:  a.log.Component("backend"),
	})

	managers := usecase.NewSet(backend.NewResources(client), listview.NewCollator(cfg.List.Locale),
		usecase.WithConcurrency(cfg.Backend.BulkConcurrency),
		usecase.WithLogger(a.log.Component("usecase")),
		usecase.WithStore(),
	)
	a.auth = auth.NewAuthUseCase(backend.NewAuthRepository(client), tokens)
	a.dashboard = appanalytics.NewDashboardUseCase(backend.NewDashboardRepository(client))
	a.exporter = export.NewUseCase(infrapdf.NewMarotoPDFGenerator(cfg.App.Name), infraxlsx.NewExcelizeGenerator())
	a.resources = bindResources(managers)
	return nil
}

// resource busca la entidad por nombre.
func (a *app) resource(name string) (resource, error) {
	r, ok := a.resources[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("entidad %q desconocida (use %s)", name, strings.Join(usecase.Names, ", "))
	}
	return r, nil
}

// entityArgs valida que el primer argumento sea una entidad conocida.
func entityArgs(minArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs {
			return fmt.Errorf("se esperaban al menos %d argumentos, se recibieron %d", minArgs, len(args))
		}
		if !slices.Contains(usecase.Names, strings.ToLower(args[0])) {
			return fmt.Errorf("entidad %q desconocida (use %s)", args[0], strings.Join(usecase.Names, ", "))
		}
		return nil
	}
}

// entityCompletion autocompleta el nombre de la entidad.
func entityCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return usecase.Names, cobra.ShellCompDirectiveNoFileComp
}
