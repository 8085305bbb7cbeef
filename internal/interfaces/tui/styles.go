// Package tui implementa el navegador de listados en terminal (bubbletea).
package tui

import "github.com/charmbracelet/lipgloss"

// Styles estilos del navegador. Los colores siguen la paleta de los reportes.
type Styles struct {
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Confirm  lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles estilos por defecto.
func DefaultStyles() Styles {
	primary := lipgloss.Color("#00467F")
	gray := lipgloss.Color("#646464")
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 1),
		Meta:     lipgloss.NewStyle().Foreground(gray),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")).Bold(true),
		Confirm:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F9A825")).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(gray).Italic(true),
		Selected: lipgloss.NewStyle().Foreground(primary).Bold(true),
	}
}
