package main

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/export"
	"github.com/jhoicas/classicmodels-admin/internal/application/form"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/interfaces/tui"
)

// pinnedColumns la clave del registro no se desplaza con --col.
const pinnedColumns = 1

// resource operaciones del CLI sobre una entidad, sin conocer su tipo.
type resource interface {
	Title() string
	Window(size, offset int) listview.ColumnWindow
	List(ctx context.Context, q listview.Query, pager listview.Pager, w listview.ColumnWindow) (listing, error)
	Table(ctx context.Context, q listview.Query, w listview.ColumnWindow) (export.Table, error)
	Delete(ctx context.Context, keys []string) (usecase.BulkResult, error)
	Create(ctx context.Context, fields map[string]string) (string, error)
	Update(ctx context.Context, key string, fields map[string]string) error
	Browser(ctx context.Context, opts tui.Options) (tui.Model, error)
}

// listing página de la vista derivada, lista para imprimir.
type listing struct {
	Table export.Table
	View  dto.ListView[map[string]string]
}

// binding adapta un Manager[T] a resource.
type binding[T entity.Keyed] struct {
	mgr      *usecase.Manager[T]
	title    string
	parse    func(form.State) (T, error)
	state    func(T) form.State // nil: la entidad no se edita a partir del registro actual
	keyParts []string
}

func bindResources(s *usecase.Set) map[string]resource {
	return map[string]resource{
		usecase.Customers: &binding[entity.Customer]{
			mgr: s.Customers, title: "Clientes",
			parse: form.ParseCustomer, state: form.CustomerState,
			keyParts: []string{"customerNumber"},
		},
		usecase.Products: &binding[entity.Product]{
			mgr: s.Products, title: "Productos",
			parse: form.ParseProduct, state: form.ProductState,
			keyParts: []string{"productCode"},
		},
		usecase.Orders: &binding[entity.Order]{
			mgr: s.Orders, title: "Pedidos",
			parse: form.ParseOrder, state: form.OrderState,
			keyParts: []string{"orderNumber"},
		},
		usecase.Payments: &binding[entity.Payment]{
			mgr: s.Payments, title: "Pagos",
			parse: form.ParsePayment, state: form.PaymentState,
			keyParts: []string{"customerNumber", "checkNumber"},
		},
		usecase.Employees: &binding[entity.Employee]{
			mgr: s.Employees, title: "Empleados",
			parse:    form.ParseEmployee,
			keyParts: []string{"employeeNumber"},
		},
		usecase.Offices: &binding[entity.Office]{
			mgr: s.Offices, title: "Oficinas",
			parse: form.ParseOffice, state: form.OfficeState,
			keyParts: []string{"officeCode"},
		},
	}
}

func (b *binding[T]) Title() string { return b.title }

func (b *binding[T]) Window(size, offset int) listview.ColumnWindow {
	spec := b.mgr.Lister().Spec()
	return listview.NewColumnWindow(len(spec.Columns), size, pinnedColumns).WithOffset(offset)
}

func (b *binding[T]) List(ctx context.Context, q listview.Query, pager listview.Pager, w listview.ColumnWindow) (listing, error) {
	view, err := b.mgr.View(ctx, q)
	if err != nil {
		return listing{}, err
	}
	pager = listview.NewPager(pager.Page, pager.PerPage, len(view.Items))
	page := listview.Paginate(view.Items, pager)

	spec := b.mgr.Lister().Spec()
	cols := w.Visible()

	items := make([]map[string]string, 0, len(page))
	for _, it := range page {
		row := make(map[string]string, len(cols))
		for _, i := range cols {
			row[spec.Columns[i].Key] = spec.Columns[i].Value(it)
		}
		items = append(items, row)
	}
	visible := make([]dto.ColumnInfo, 0, len(cols))
	for _, i := range cols {
		visible = append(visible, dto.ColumnInfo{Key: spec.Columns[i].Key, Title: spec.Columns[i].Title})
	}

	return listing{
		Table: export.BuildTable(b.title, spec, page, cols),
		View: dto.ListView[map[string]string]{
			Items:    items,
			Total:    view.Total,
			Filtered: len(view.Items),
			Page: dto.PageInfo{
				Page:       pager.Page,
				PerPage:    pager.PerPage,
				TotalPages: pager.TotalPages(),
				Numbers:    pager.PageNumbers(),
				HasPrev:    pager.HasPrev(),
				HasNext:    pager.HasNext(),
			},
			Options: view.Options,
			Sort:    dto.SortInfo{Key: view.Sort.Key, Desc: view.Sort.Desc},
			Columns: dto.ColumnsInfo{
				Visible:        visible,
				Offset:         w.Offset(),
				Total:          len(spec.Columns),
				CanScrollLeft:  w.CanScrollLeft(),
				CanScrollRight: w.CanScrollRight(),
			},
		},
	}, nil
}

// Table todas las filas filtradas con las columnas visibles.
func (b *binding[T]) Table(ctx context.Context, q listview.Query, w listview.ColumnWindow) (export.Table, error) {
	view, err := b.mgr.View(ctx, q)
	if err != nil {
		return export.Table{}, err
	}
	return export.BuildTable(b.title, b.mgr.Lister().Spec(), view.Items, w.Visible()), nil
}

func (b *binding[T]) Delete(ctx context.Context, keys []string) (usecase.BulkResult, error) {
	return b.mgr.BulkDelete(ctx, keys)
}

func (b *binding[T]) Create(ctx context.Context, fields map[string]string) (string, error) {
	item, err := b.parse(form.New(fields))
	if err != nil {
		return "", err
	}
	created, err := b.mgr.Create(ctx, item)
	if err != nil {
		return "", err
	}
	return (*created).Key(), nil
}

// Update parte del registro actual (si el backend permite leerlo), aplica los
// campos recibidos y fija los campos de la clave.
func (b *binding[T]) Update(ctx context.Context, key string, fields map[string]string) error {
	state := form.New(nil)
	if b.state != nil {
		current, err := b.mgr.Get(ctx, key)
		switch {
		case err == nil:
			state = b.state(*current)
		case !errors.Is(err, domain.ErrUnsupported):
			return err
		}
	}
	for field, v := range fields {
		state = state.With(field, v)
	}
	parts := strings.SplitN(key, "/", len(b.keyParts))
	for i, p := range parts {
		state = state.With(b.keyParts[i], p)
	}

	item, err := b.parse(state)
	if err != nil {
		return err
	}
	_, err = b.mgr.Update(ctx, key, item)
	return err
}

func (b *binding[T]) Browser(ctx context.Context, opts tui.Options) (tui.Model, error) {
	return tui.NewBrowser(ctx, b.mgr, b.title, opts)
}
