// Package entity contiene los registros del negocio tal como los expone el
// backend REST. El dashboard no impone invariantes más allá de los campos
// requeridos al enviar un formulario.
package entity

// Keyed lo implementan todas las entidades listables; Key es la clave de
// selección y de la ruta REST de detalle.
type Keyed interface {
	Key() string
}

// DateLayout formato de fecha (sin hora) que usa el backend.
const DateLayout = "2006-01-02"
