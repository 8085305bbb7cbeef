// Package form representa el estado de los formularios de alta/edición como
// un valor inmutable y lo convierte en entidades validadas.
package form

import (
	"maps"
	"slices"
	"strings"
)

// State valores crudos del formulario, por clave de campo. Es inmutable: With
// devuelve un estado nuevo y el original no cambia.
type State struct {
	values map[string]string
}

// New estado inicial a partir de valores (se copian).
func New(values map[string]string) State {
	return State{values: maps.Clone(values)}
}

// With reducer del formulario: devuelve un estado con field = value.
func (s State) With(field, value string) State {
	next := make(map[string]string, len(s.values)+1)
	maps.Copy(next, s.values)
	next[field] = value
	return State{values: next}
}

// Get valor de un campo, sin espacios alrededor.
func (s State) Get(field string) string {
	return strings.TrimSpace(s.values[field])
}

// Values copia de todos los valores.
func (s State) Values() map[string]string {
	out := maps.Clone(s.values)
	if out == nil {
		out = map[string]string{}
	}
	return out
}

// Fields claves presentes, ordenadas.
func (s State) Fields() []string {
	return slices.Sorted(maps.Keys(s.values))
}
