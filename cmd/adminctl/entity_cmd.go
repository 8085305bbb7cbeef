package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/interfaces/tui"
)

// ── Flags de consulta ──

// queryFlags búsqueda, orden, filtros y ventana de columnas comunes a list y export.
type queryFlags struct {
	search  string
	sort    string
	filters map[string]string
	col     int
	cols    int
}

func (f *queryFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.search, "search", "s", "", "texto a buscar (sin distinguir mayúsculas)")
	fl.StringVar(&f.sort, "sort", "", `orden: "campo", "-campo" (desc) o "+campo" (asc)`)
	fl.StringToStringVarP(&f.filters, "filter", "f", nil, "filtro exacto campo=valor (repetible)")
	fl.IntVar(&f.col, "col", 0, "desplazamiento de la ventana de columnas")
	fl.IntVar(&f.cols, "cols", 0, "columnas visibles además de la clave (por defecto LIST_COLUMN_WINDOW; -1 = todas)")
}

func (f *queryFlags) query() listview.Query {
	return listview.Query{Search: f.search, Sort: f.sort, Filters: f.filters}
}

func (f *queryFlags) window(a *app, r resource) listview.ColumnWindow {
	size := f.cols
	switch {
	case size < 0:
		size = 0 // todas
	case size == 0:
		size = a.cfg.List.ColumnWindow
	}
	return r.Window(size, f.col)
}

// ── list ──

func newListCmd(a *app) *cobra.Command {
	var (
		qf      queryFlags
		page    int
		perPage int
	)
	cmd := &cobra.Command{
		Use:   "list <entidad>",
		Short: "Listar una entidad con búsqueda, filtros, orden y paginación",
		Example: `  adminctl list customers --search gift --filter country=USA --sort -creditLimit
  adminctl list products --page 2 --per-page 20 --col 3
  adminctl list payments -o json`,
		Args:              entityArgs(1),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			if perPage <= 0 {
				perPage = a.cfg.List.PageSize
			}
			// sin clamp: el total se conoce recién en List
			res, err := r.List(cmd.Context(), qf.query(), listview.Pager{Page: page, PerPage: perPage}, qf.window(a, r))
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(a.out, res.View)
			}

			v := res.View
			if len(res.Table.Rows) == 0 {
				fmt.Fprintf(a.out, "%s: sin registros para los filtros aplicados (%d en total)\n", r.Title(), v.Total)
				return nil
			}
			printTable(a.out, res.Table.Headers, res.Table.Rows)
			sortDir := "asc"
			if v.Sort.Desc {
				sortDir = "desc"
			}
			printMeta(a.out, "%s · %d de %d · página %d/%d · orden %s %s",
				r.Title(), v.Filtered, v.Total, v.Page.Page, v.Page.TotalPages, v.Sort.Key, sortDir)
			if v.Columns.CanScrollRight {
				printMeta(a.out, "más columnas con --col %d", v.Columns.Offset+max(len(v.Columns.Visible)-pinnedColumns, 1))
			}
			return nil
		},
	}
	qf.bind(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "página (desde 1)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "filas por página (por defecto LIST_PAGE_SIZE)")
	return cmd
}

// ── export ──

func newExportCmd(a *app) *cobra.Command {
	var (
		qf     queryFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export <entidad>",
		Short: "Exportar la vista filtrada a PDF o XLSX",
		Long: `Exporta todas las filas que cumplen la búsqueda y los filtros, con las
columnas de la ventana actual, a PDF o XLSX.`,
		Example: `  adminctl export orders --filter status=Shipped --format pdf
  adminctl export customers --cols -1 --out clientes.xlsx`,
		Args:              entityArgs(1),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			table, err := r.Table(cmd.Context(), qf.query(), qf.window(a, r))
			if err != nil {
				return err
			}
			file, err := a.exporter.Render(cmd.Context(), f, table)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := a.out.Write(file.Data)
				return err
			}
			if out == "" {
				out = file.Name
			}
			if err := os.WriteFile(out, file.Data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(a.errOut, "%d registros exportados a %s\n", len(table.Rows), out)
			return nil
		},
	}
	qf.bind(cmd)
	cmd.Flags().StringVar(&format, "format", string(export.FormatXLSX), "formato: pdf o xlsx")
	cmd.Flags().StringVar(&out, "out", "", `archivo de salida (por defecto <título>_<fecha>.<ext>; "-" = stdout)`)
	return cmd
}

// ── delete ──

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <entidad> <clave>...",
		Short: "Eliminar uno o varios registros",
		Long: `Elimina los registros indicados (un DELETE por clave, en paralelo) y
recarga la colección una sola vez al final. Las claves de pagos son
<cliente>/<cheque>.`,
		Example: `  adminctl delete customers 103 112 114 --yes
  adminctl delete payments 103/HQ336336`,
		Args:              entityArgs(2),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			keys := args[1:]
			if !yes {
				fmt.Fprintf(a.errOut, "¿Eliminar %d registros de %s? [y/N] ", len(keys), r.Title())
				if ans := strings.ToLower(strings.TrimSpace(a.readLine())); ans != "y" && ans != "s" {
					fmt.Fprintln(a.errOut, "Cancelado")
					return nil
				}
			}

			res, err := r.Delete(cmd.Context(), keys)
			if a.output == "json" && (err == nil || len(res.Deleted)+len(res.Failed) > 0) {
				out := map[string]any{"requested": res.Requested, "deleted": res.Deleted}
				if len(res.Failed) > 0 {
					failed := make(map[string]string, len(res.Failed))
					for k, e := range res.Failed {
						failed[k] = describe(e)
					}
					out["failed"] = failed
				}
				if perr := printJSON(a.out, out); perr != nil {
					return perr
				}
				return err
			}
			if len(res.Deleted) > 0 {
				fmt.Fprintf(a.out, "%d eliminados: %s\n", len(res.Deleted), strings.Join(res.Deleted, ", "))
			}
			for _, k := range res.FailedKeys() {
				fmt.Fprintf(a.out, "%s: %s\n", k, describe(res.Failed[k]))
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

// ── create / update ──

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <entidad> campo=valor...",
		Short: "Crear un registro a partir de campos del formulario",
		Example: `  adminctl create payments customerNumber=103 checkNumber=HQ336336 paymentDate=2024-03-15 amount=100.50
  adminctl create offices officeCode=8 city=Bogotá phone="+57 1 555" addressLine1="Cra 7" country=Colombia postalCode=110111 territory=LATAM`,
		Args:              entityArgs(2),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(args[1:])
			if err != nil {
				return err
			}
			key, err := r.Create(cmd.Context(), fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: registro %s creado\n", r.Title(), key)
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <entidad> <clave> campo=valor...",
		Short: "Modificar campos de un registro",
		Long: `Modifica un registro. Los campos no indicados conservan el valor actual
cuando el backend permite leer el registro; si no (pagos), deben indicarse
todos.`,
		Example: `  adminctl update customers 103 creditLimit=25000.00
  adminctl update payments 103/HQ336336 paymentDate=2024-03-16 amount=120`,
		Args:              entityArgs(3),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(args[2:])
			if err != nil {
				return err
			}
			if err := r.Update(cmd.Context(), args[1], fields); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: registro %s actualizado\n", r.Title(), args[1])
			return nil
		},
	}
}

// parseFields convierte argumentos campo=valor en valores de formulario.
func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, &domain.ValidationError{Fields: map[string]string{arg: "se esperaba campo=valor"}}
		}
		fields[strings.TrimSpace(k)] = v
	}
	return fields, nil
}

// ── browse ──

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <entidad>",
		Short: "Navegar una entidad en una tabla interactiva",
		Long: `Abre una tabla interactiva con búsqueda, orden, filtros, selección
múltiple, borrado masivo, paginación y ventana de columnas.
Pulse q para salir.`,
		Args:              entityArgs(1),
		ValidArgsFunction: entityCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resource(args[0])
			if err != nil {
				return err
			}
			m, err := r.Browser(cmd.Context(), tui.Options{
				PageSize:     a.cfg.List.PageSize,
				ColumnWindow: a.cfg.List.ColumnWindow,
			})
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), m)
		},
	}
}
