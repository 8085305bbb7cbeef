package entity

// Roles que emite el backend de autenticación.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario autenticado según el colaborador de auth (sin credenciales).
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
}
