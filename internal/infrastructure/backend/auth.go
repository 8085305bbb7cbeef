package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// userWire usuario tal como lo devuelve el colaborador de auth. El id puede
// ser numérico o string según la versión del backend.
type userWire struct {
	ID    any    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (w userWire) toEntity() entity.User {
	u := entity.User{Email: w.Email, Name: w.Name, Role: w.Role}
	switch id := w.ID.(type) {
	case string:
		u.ID = id
	case float64:
		u.ID = strconv.FormatInt(int64(id), 10)
	}
	return u
}

type loginWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseWire struct {
	Token       string    `json:"token"`
	AccessToken string    `json:"accessToken"`
	User        *userWire `json:"user"`
}

type registerWire struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type checkEmailWire struct {
	Exists bool `json:"exists"`
}

type validateWire struct {
	Valid bool      `json:"valid"`
	User  *userWire `json:"user"`
}

type authRepository struct {
	c *Client
}

// NewAuthRepository POST /auth/login, POST /auth/register, GET /auth/check-email, GET /auth/validate.
func NewAuthRepository(c *Client) repository.AuthRepository {
	return &authRepository{c: c}
}

func (r *authRepository) Login(ctx context.Context, in repository.Credentials) (*repository.Session, error) {
	var out loginResponseWire
	if err := r.c.do(ctx, http.MethodPost, "/auth/login", nil, loginWire{Email: in.Email, Password: in.Password}, &out); err != nil {
		return nil, err
	}
	token := out.Token
	if token == "" {
		token = out.AccessToken
	}
	if token == "" {
		return nil, fmt.Errorf("backend: POST /auth/login: %w: respuesta sin token", domain.ErrDecode)
	}
	s := &repository.Session{Token: token}
	if out.User != nil {
		s.User = out.User.toEntity()
	} else {
		s.User = entity.User{Email: in.Email}
	}
	return s, nil
}

func (r *authRepository) Register(ctx context.Context, in repository.Registration) (*entity.User, error) {
	var out userWire
	body := registerWire{Name: in.Name, Email: in.Email, Password: in.Password}
	if err := r.c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out); err != nil {
		return nil, err
	}
	u := out.toEntity()
	if u.Email == "" {
		u.Email = in.Email
	}
	return &u, nil
}

func (r *authRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var out checkEmailWire
	if err := r.c.do(ctx, http.MethodGet, "/auth/check-email", url.Values{"email": {email}}, nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (r *authRepository) Validate(ctx context.Context) (*entity.User, error) {
	var out validateWire
	if err := r.c.do(ctx, http.MethodGet, "/auth/validate", nil, nil, &out); err != nil {
		return nil, err
	}
	if !out.Valid {
		return nil, fmt.Errorf("backend: GET /auth/validate: %w", domain.ErrSessionExpired)
	}
	if out.User == nil {
		return &entity.User{}, nil
	}
	u := out.User.toEntity()
	return &u, nil
}
