package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/classicmodels-admin/internal/application/dto"
	"github.com/jhoicas/classicmodels-admin/internal/domain"
	pkgjwt "github.com/jhoicas/classicmodels-admin/pkg/jwt"
)

// en el login un 401 son credenciales inválidas, no una sesión vencida
var errLoginFailed = errors.New("email o contraseña incorrectos")

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión y guardar el token",
		Long: `Inicia sesión contra el backend y guarda el token en TOKEN_FILE.
Si no se pasa --password se lee de la entrada estándar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(a.errOut, "Contraseña: ")
				password = a.readLine()
			}
			res, err := a.auth.Login(cmd.Context(), dto.LoginRequest{Email: email, Password: password})
			if errors.Is(err, domain.ErrUnauthorized) {
				return errLoginFailed
			}
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(a.out, res.User)
			}
			fmt.Fprintf(a.out, "Sesión iniciada como %s <%s>\n", res.User.Name, res.User.Email)
			printMeta(a.out, "token guardado en %s", a.tokens.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del usuario")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (por defecto se pide)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Validar la sesión y mostrar el usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.auth.Validate(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(a.out, user)
			}
			pairs := [][2]string{
				{"Nombre", user.Name},
				{"Email", user.Email},
				{"Rol", nonEmpty(user.Role, "-")},
			}
			// solo informativo: el backend ya validó el token
			if claims, err := pkgjwt.Inspect(a.tokens.Token(), time.Now()); err == nil && claims.ExpiresAt != nil {
				pairs = append(pairs, [2]string{"Expira", claims.ExpiresAt.Local().Format("2006-01-02 15:04")})
			}
			printKV(a.out, pairs)
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var in dto.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registrar un usuario nuevo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				fmt.Fprint(a.errOut, "Contraseña: ")
				in.Password = a.readLine()
			}
			user, err := a.auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(a.out, user)
			}
			fmt.Fprintf(a.out, "Usuario %s <%s> registrado; ejecute 'adminctl login'\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "nombre")
	cmd.Flags().StringVar(&in.Email, "email", "", "email")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña, mínimo 8 caracteres (por defecto se pide)")
	return cmd
}

// readLine una línea de la entrada estándar, sin el salto final.
func (a *app) readLine() string {
	sc := bufio.NewScanner(a.in)
	if sc.Scan() {
		return strings.TrimRight(sc.Text(), "\r")
	}
	return ""
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
