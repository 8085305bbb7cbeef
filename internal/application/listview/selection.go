package listview

import "slices"

// Selection conjunto de claves seleccionadas para acciones masivas. El valor
// cero es una selección vacía lista para usar. No es seguro para uso
// concurrente; lo posee una sola superficie.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection crea una selección con las claves dadas.
func NewSelection(keys ...string) *Selection {
	s := &Selection{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Toggle invierte la pertenencia de key y devuelve si quedó seleccionada.
func (s *Selection) Toggle(key string) bool {
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
		return false
	}
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	s.keys[key] = struct{}{}
	return true
}

// SelectAll reemplaza la selección por exactamente los registros visibles.
func (s *Selection) SelectAll(visible []string) {
	s.keys = make(map[string]struct{}, len(visible))
	for _, k := range visible {
		s.keys[k] = struct{}{}
	}
}

// AllSelected indica si todos los visibles están seleccionados. Una lista
// vacía nunca cuenta como "todo seleccionado".
func (s *Selection) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, k := range visible {
		if _, ok := s.keys[k]; !ok {
			return false
		}
	}
	return true
}

// ToggleAll: si todos los visibles ya están seleccionados limpia la
// selección, si no selecciona exactamente los visibles.
func (s *Selection) ToggleAll(visible []string) {
	if s.AllSelected(visible) {
		s.Clear()
		return
	}
	s.SelectAll(visible)
}

// Clear vacía la selección.
func (s *Selection) Clear() { s.keys = make(map[string]struct{}) }

// Has indica si key está seleccionada.
func (s *Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Len cantidad de claves seleccionadas.
func (s *Selection) Len() int { return len(s.keys) }

// Keys claves seleccionadas, ordenadas.
func (s *Selection) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Retain descarta las claves que ya no existen en la colección (después de un
// refresh o de un borrado masivo).
func (s *Selection) Retain(existing []string) {
	keep := make(map[string]struct{}, len(existing))
	for _, k := range existing {
		keep[k] = struct{}{}
	}
	for k := range s.keys {
		if _, ok := keep[k]; !ok {
			delete(s.keys, k)
		}
	}
}
