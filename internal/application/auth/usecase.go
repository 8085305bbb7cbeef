// Package auth contiene los casos de uso de sesión contra el colaborador
// externo de autenticación.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/application/form"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// TokenStore dónde queda el token de la sesión (memoria, archivo del CLI).
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// AuthUseCase login, registro, validación y logout.
type AuthUseCase struct {
	repo   repository.AuthRepository
	tokens TokenStore
}

// NewAuthUseCase construye el caso de uso de auth. tokens puede ser nil
// (servidor sin estado: el token viaja en cada request).
func NewAuthUseCase(repo repository.AuthRepository, tokens TokenStore) *AuthUseCase {
	return &AuthUseCase{repo: repo, tokens: tokens}
}

// Login verifica credenciales contra el colaborador y guarda el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := form.Check(in); err != nil {
		return nil, err
	}
	session, err := uc.repo.Login(ctx, repository.Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, fmt.Errorf("auth: login: %w", err)
	}
	if uc.tokens != nil {
		if err := uc.tokens.SetToken(session.Token); err != nil {
			return nil, fmt.Errorf("auth: guardar token: %w", err)
		}
	}
	return &dto.LoginResponse{Token: session.Token, User: toUserResponse(session.User)}, nil
}

// Register crea el usuario. Devuelve ErrConflict si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := form.Check(in); err != nil {
		return nil, err
	}
	email := in.Email
	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: verificar email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("auth: registro de %s: %w", email, domain.ErrConflict)
	}
	user, err := uc.repo.Register(ctx, repository.Registration{Name: in.Name, Email: email, Password: in.Password})
	if err != nil {
		return nil, fmt.Errorf("auth: registro: %w", err)
	}
	out := toUserResponse(*user)
	return &out, nil
}

// CheckEmail indica si el email ya está registrado.
func (uc *AuthUseCase) CheckEmail(ctx context.Context, email string) (*dto.CheckEmailResponse, error) {
	email = strings.TrimSpace(email)
	if err := form.Check(struct {
		Email string `json:"email" validate:"required,email"`
	}{email}); err != nil {
		return nil, err
	}
	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: verificar email: %w", err)
	}
	return &dto.CheckEmailResponse{Email: email, Exists: exists}, nil
}

// Validate consulta al colaborador si la sesión sigue vigente.
func (uc *AuthUseCase) Validate(ctx context.Context) (*dto.UserResponse, error) {
	user, err := uc.repo.Validate(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: validar sesión: %w", err)
	}
	out := toUserResponse(*user)
	return &out, nil
}

// HasSession indica si hay un token guardado.
func (uc *AuthUseCase) HasSession() bool {
	return uc.tokens != nil && uc.tokens.Token() != ""
}

// Logout descarta el token local. El colaborador no expone revocación.
func (uc *AuthUseCase) Logout() error {
	if uc.tokens == nil {
		return nil
	}
	if err := uc.tokens.Clear(); err != nil {
		return fmt.Errorf("auth: borrar token: %w", err)
	}
	return nil
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
