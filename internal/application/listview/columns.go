package listview

// ColumnWindow paginación horizontal de columnas. Las primeras Pinned
// columnas siempre son visibles; el resto se muestra en ventanas de Size.
type ColumnWindow struct {
	total  int
	size   int
	pinned int
	offset int
}

// NewColumnWindow total columnas, size visibles además de las fijas.
func NewColumnWindow(total, size, pinned int) ColumnWindow {
	if total < 0 {
		total = 0
	}
	if pinned < 0 {
		pinned = 0
	}
	if pinned > total {
		pinned = total
	}
	if size <= 0 {
		size = total - pinned
	}
	return ColumnWindow{total: total, size: size, pinned: pinned}
}

func (w ColumnWindow) maxOffset() int {
	m := w.total - w.pinned - w.size
	if m < 0 {
		return 0
	}
	return m
}

// Offset desplazamiento actual de la ventana.
func (w ColumnWindow) Offset() int { return w.offset }

// WithOffset fija el desplazamiento, acotado a [0, máximo].
func (w ColumnWindow) WithOffset(offset int) ColumnWindow {
	if offset > w.maxOffset() {
		offset = w.maxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	w.offset = offset
	return w
}

// Visible índices de columnas visibles: fijas más la ventana actual.
func (w ColumnWindow) Visible() []int {
	out := make([]int, 0, w.pinned+w.size)
	for i := 0; i < w.pinned; i++ {
		out = append(out, i)
	}
	start := w.pinned + w.offset
	end := start + w.size
	if end > w.total {
		end = w.total
	}
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// CanScrollLeft hay columnas ocultas a la izquierda.
func (w ColumnWindow) CanScrollLeft() bool { return w.offset > 0 }

// CanScrollRight hay columnas ocultas a la derecha.
func (w ColumnWindow) CanScrollRight() bool { return w.offset < w.maxOffset() }

// ScrollRight desplaza la ventana un paso a la derecha.
func (w ColumnWindow) ScrollRight() ColumnWindow { return w.WithOffset(w.offset + w.size) }

// ScrollLeft desplaza la ventana un paso a la izquierda.
func (w ColumnWindow) ScrollLeft() ColumnWindow { return w.WithOffset(w.offset - w.size) }
