package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/classicmodels-admin/internal/application/collection"
	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/application/usecase"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

const (
	markSelected = "●"
	minColWidth  = 4
	maxColWidth  = 28
	chromeLines  = 7 // título, búsqueda, paginación, estado, ayuda
)

const helpLine = "↑/↓ mover · espacio marcar · a marcar página · / buscar · s/S orden · f/F filtro · n/p página · ←/→ columnas · d borrar · r recargar · q salir"

// Options tamaños iniciales del navegador.
type Options struct {
	PageSize     int
	ColumnWindow int
	Styles       *Styles
}

// ── Mensajes ──

type loadedMsg[T any] struct {
	snap collection.Snapshot[T]
}

type bulkDoneMsg[T any] struct {
	res  usecase.BulkResult
	err  error
	snap collection.Snapshot[T]
}

// Browser navegador de una entidad: tabla paginada con búsqueda, orden,
// filtros, selección múltiple, ventana de columnas y borrado masivo.
type Browser[T entity.Keyed] struct {
	ctx    context.Context
	mgr    *usecase.Manager[T]
	store  *collection.Store[T]
	title  string
	styles Styles

	query     listview.Query
	filterIdx int
	perPage   int
	pager     listview.Pager
	window    listview.ColumnWindow
	sel       *listview.Selection

	snap   collection.Snapshot[T]
	result listview.Result[T]
	page   []T

	table      table.Model
	search     textinput.Model
	searching  bool
	confirming bool

	status string
	failed bool
	err    error // sesión expirada: termina el programa
}

// NewBrowser construye el navegador. El Manager debe tener store
// (usecase.WithStore) para que las mutaciones refresquen la tabla.
func NewBrowser[T entity.Keyed](ctx context.Context, mgr *usecase.Manager[T], title string, opts Options) (*Browser[T], error) {
	if mgr.Store() == nil {
		return nil, fmt.Errorf("tui: %s sin store", mgr.Name())
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "buscar"

	spec := mgr.Lister().Spec()
	b := &Browser[T]{
		ctx:     ctx,
		mgr:     mgr,
		store:   mgr.Store(),
		title:   title,
		styles:  styles,
		perPage: opts.PageSize,
		pager:   listview.NewPager(1, opts.PageSize, 0),
		window:  listview.NewColumnWindow(len(spec.Columns), opts.ColumnWindow, 1),
		sel:     listview.NewSelection(),
		search:  search,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(opts.PageSize),
		),
		status: "cargando…",
	}
	return b, nil
}

// Err error que cerró el navegador (p. ej. sesión expirada).
func (b *Browser[T]) Err() error { return b.err }

// Selection selección actual.
func (b *Browser[T]) Selection() *listview.Selection { return b.sel }

// Result vista derivada actual (todas las filas filtradas).
func (b *Browser[T]) Result() listview.Result[T] { return b.result }

// Init dispara la primera carga.
func (b *Browser[T]) Init() tea.Cmd { return b.load() }

func (b *Browser[T]) load() tea.Cmd {
	store, ctx := b.store, b.ctx
	return func() tea.Msg { return loadedMsg[T]{snap: store.Load(ctx)} }
}

func (b *Browser[T]) bulkDelete(keys []string) tea.Cmd {
	mgr, store, ctx := b.mgr, b.store, b.ctx
	return func() tea.Msg {
		res, err := mgr.BulkDelete(ctx, keys)
		return bulkDoneMsg[T]{res: res, err: err, snap: store.Snapshot()}
	}
}

// Update maneja mensajes.
func (b *Browser[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.table.SetWidth(msg.Width)
		b.table.SetHeight(max(msg.Height-chromeLines, 3))
		return b, nil

	case loadedMsg[T]:
		return b, b.apply(msg.snap, "")

	case bulkDoneMsg[T]:
		if msg.err != nil && errors.Is(msg.err, domain.ErrUnsupported) {
			b.setError(fmt.Errorf("%s: %w", b.title, domain.ErrUnsupported))
			return b, nil
		}
		status := fmt.Sprintf("%d eliminados", len(msg.res.Deleted))
		if n := len(msg.res.Failed); n > 0 {
			status += fmt.Sprintf(", %d fallaron (%s)", n, strings.Join(msg.res.FailedKeys(), ", "))
			if first := msg.res.Failed[msg.res.FailedKeys()[0]]; errors.Is(first, domain.ErrSessionExpired) {
				b.err = first
				return b, tea.Quit
			}
		}
		cmd := b.apply(msg.snap, status)
		b.failed = len(msg.res.Failed) > 0
		return b, cmd

	case tea.KeyMsg:
		switch {
		case b.searching:
			return b, b.updateSearch(msg)
		case b.confirming:
			return b, b.updateConfirm(msg)
		}
		return b, b.updateKeys(msg)
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// apply publica un snapshot de la store y rearma la tabla.
func (b *Browser[T]) apply(snap collection.Snapshot[T], status string) tea.Cmd {
	b.snap = snap
	if snap.Err != nil {
		if errors.Is(snap.Err, domain.ErrSessionExpired) {
			b.err = snap.Err
			return tea.Quit
		}
		b.setError(snap.Err)
	} else {
		b.status, b.failed = status, false
	}

	keys := make([]string, 0, len(snap.Data))
	for _, it := range snap.Data {
		keys = append(keys, it.Key())
	}
	b.sel.Retain(keys)
	b.rebuild()
	return nil
}

func (b *Browser[T]) setError(err error) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		b.status = apiErr.Message
	} else {
		b.status = err.Error()
	}
	b.failed = true
}

func (b *Browser[T]) updateKeys(msg tea.KeyMsg) tea.Cmd {
	spec := b.mgr.Lister().Spec()

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "/":
		b.searching = true
		b.search.SetValue(b.query.Search)
		return b.search.Focus()

	case "esc":
		b.query = listview.Query{Sort: b.query.Sort}
		b.pager.Page = 1
		b.rebuild()

	case " ":
		if it, ok := b.current(); ok {
			b.sel.Toggle(it.Key())
			b.rebuild()
		}

	case "a":
		b.sel.ToggleAll(b.pageKeys())
		b.rebuild()

	case "c":
		b.sel.Clear()
		b.rebuild()

	case "s":
		if keys := spec.SortKeys(); len(keys) > 0 {
			// siguiente a la clave activa; una desconocida da -1 y arranca en la primera
			next := (slices.Index(keys, b.result.Sort.Key) + 1) % len(keys)
			b.query.Sort = keys[next]
			b.pager.Page = 1
			b.rebuild()
		}

	case "S":
		if order := b.result.Sort; order.Key != "" {
			if order.Desc {
				b.query.Sort = "+" + order.Key
			} else {
				b.query.Sort = "-" + order.Key
			}
			b.rebuild()
		}

	case "F":
		if len(spec.Filters) > 0 {
			b.filterIdx = (b.filterIdx + 1) % len(spec.Filters)
			b.status, b.failed = "filtro: "+spec.Filters[b.filterIdx].Label, false
		}

	case "f":
		if len(spec.Filters) > 0 {
			b.cycleFilter(spec.Filters[b.filterIdx].Key)
		}

	case "n", "pgdown":
		b.pager = b.pager.Next()
		b.rebuild()

	case "p", "pgup":
		b.pager = b.pager.Prev()
		b.rebuild()

	case "right", "l":
		b.window = b.window.ScrollRight()
		b.rebuild()

	case "left", "h":
		b.window = b.window.ScrollLeft()
		b.rebuild()

	case "r":
		b.status, b.failed = "actualizando…", false
		return b.load()

	case "d":
		if b.sel.Len() == 0 {
			b.status, b.failed = "no hay registros marcados", true
			return nil
		}
		b.confirming = true

	default:
		var cmd tea.Cmd
		b.table, cmd = b.table.Update(msg)
		return cmd
	}
	return nil
}

// cycleFilter pasa al siguiente valor del filtro; después del último lo quita.
func (b *Browser[T]) cycleFilter(key string) {
	options := b.result.Options[key]
	current := b.query.Filters[key]
	next := ""
	if current == "" && len(options) > 0 {
		next = options[0]
	}
	for i, o := range options {
		if o == current && i+1 < len(options) {
			next = options[i+1]
		}
	}
	b.query = b.query.WithFilter(key, next)
	b.pager.Page = 1
	b.rebuild()
}

func (b *Browser[T]) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		b.searching = false
		b.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	if v := b.search.Value(); v != b.query.Search {
		b.query.Search = v
		b.pager.Page = 1
		b.rebuild()
	}
	return cmd
}

func (b *Browser[T]) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	b.confirming = false
	if s := msg.String(); s != "y" && s != "Y" {
		b.status, b.failed = "borrado cancelado", false
		return nil
	}
	keys := b.sel.Keys()
	b.status, b.failed = fmt.Sprintf("eliminando %d…", len(keys)), false
	return b.bulkDelete(keys)
}

// ── Tabla ──

// rebuild deriva la vista (filtro, orden, página) y la vuelca en la tabla.
func (b *Browser[T]) rebuild() {
	lister := b.mgr.Lister()
	spec := lister.Spec()

	b.result = lister.Derive(b.snap.Data, b.query)
	b.pager = listview.NewPager(b.pager.Page, b.perPage, len(b.result.Items))
	b.page = listview.Paginate(b.result.Items, b.pager)

	visible := b.window.Visible()
	columns := make([]table.Column, 0, len(visible)+1)
	columns = append(columns, table.Column{Title: " ", Width: 1})
	rows := make([]table.Row, 0, len(b.page))
	for _, it := range b.page {
		mark := " "
		if b.sel.Has(it.Key()) {
			mark = markSelected
		}
		rows = append(rows, append(table.Row{mark}, spec.Row(it, visible)...))
	}
	for j, i := range visible {
		w := utf8.RuneCountInString(spec.Columns[i].Title)
		for _, r := range rows {
			w = max(w, utf8.RuneCountInString(r[j+1]))
		}
		columns = append(columns, table.Column{Title: spec.Columns[i].Title, Width: min(max(w, minColWidth), maxColWidth)})
	}

	// filas y columnas deben tener el mismo ancho al re-renderizar
	b.table.SetRows(nil)
	b.table.SetColumns(columns)
	b.table.SetRows(rows)
	if c := b.table.Cursor(); c >= len(rows) {
		b.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (b *Browser[T]) current() (T, bool) {
	var zero T
	c := b.table.Cursor()
	if c < 0 || c >= len(b.page) {
		return zero, false
	}
	return b.page[c], true
}

func (b *Browser[T]) pageKeys() []string {
	keys := make([]string, 0, len(b.page))
	for _, it := range b.page {
		keys = append(keys, it.Key())
	}
	return keys
}

// ── Vista ──

// View dibuja el navegador.
func (b *Browser[T]) View() string {
	var sb strings.Builder

	meta := fmt.Sprintf("%d de %d · orden: %s", len(b.result.Items), b.result.Total, sortLabel(b.result.Sort))
	for _, k := range b.mgr.Lister().Spec().FilterKeys() {
		if v := b.query.Filters[k]; v != "" {
			meta += fmt.Sprintf(" · %s=%s", k, v)
		}
	}
	if n := b.sel.Len(); n > 0 {
		meta += " · " + b.styles.Selected.Render(fmt.Sprintf("%d marcados", n))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, b.styles.Title.Render(b.title), " ", b.styles.Meta.Render(meta)))
	sb.WriteString("\n")

	if b.searching || b.query.Search != "" {
		sb.WriteString(b.search.View())
	}
	sb.WriteString("\n")

	sb.WriteString(b.table.View())
	sb.WriteString("\n")

	nums := make([]string, 0, 5)
	for _, n := range b.pager.PageNumbers() {
		s := fmt.Sprint(n)
		if n == b.pager.Page {
			s = "[" + s + "]"
		}
		nums = append(nums, s)
	}
	cols := ""
	if b.window.CanScrollLeft() {
		cols += "← "
	}
	cols += "columnas"
	if b.window.CanScrollRight() {
		cols += " →"
	}
	sb.WriteString(b.styles.Meta.Render(fmt.Sprintf("página %d/%d  %s  ·  %s",
		b.pager.Page, max(b.pager.TotalPages(), 1), strings.Join(nums, " "), cols)))
	sb.WriteString("\n")

	switch {
	case b.confirming:
		sb.WriteString(b.styles.Confirm.Render(fmt.Sprintf("¿Eliminar %d registros? (y/n)", b.sel.Len())))
	case b.failed:
		sb.WriteString(b.styles.Error.Render(b.status))
	default:
		sb.WriteString(b.styles.Status.Render(b.status))
	}
	sb.WriteString("\n")
	sb.WriteString(b.styles.Help.Render(helpLine))
	return sb.String()
}

func sortLabel(o listview.SortOrder) string {
	if o.Key == "" {
		return "-"
	}
	if o.Desc {
		return o.Key + " ↓"
	}
	return o.Key + " ↑"
}

// ── Programa ──

// Model navegador que puede terminar con error.
type Model interface {
	tea.Model
	Err() error
}

// Run ejecuta el navegador en pantalla completa hasta que el usuario sale.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.Err()
}
