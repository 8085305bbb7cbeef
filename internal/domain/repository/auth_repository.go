package repository

import (
	"context"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// Credentials credenciales de login.
type Credentials struct {
	Email    string
	Password string
}

// Registration datos de alta de usuario.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Session resultado de un login: token opaco + usuario.
type Session struct {
	Token string
	User  entity.User
}

// AuthRepository puerto hacia el colaborador externo de autenticación.
type AuthRepository interface {
	Login(ctx context.Context, in Credentials) (*Session, error)
	Register(ctx context.Context, in Registration) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Validate(ctx context.Context) (*entity.User, error)
}
