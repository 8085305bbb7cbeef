package form

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

var validate = newValidator()

// newValidator validador con los nombres de campo del formulario (tag form,
// o json para los DTOs) y las reglas propias (int, decimal, date).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("int", isInt); err != nil {
		panic("form: registrar regla int: " + err.Error())
	}
	if err := v.RegisterValidation("decimal", isDecimal); err != nil {
		panic("form: registrar regla decimal: " + err.Error())
	}
	if err := v.RegisterValidation("date", isDate); err != nil {
		panic("form: registrar regla date: " + err.Error())
	}
	return v
}

// isInt solo dígitos y que entre en int; "number" acepta valores que desbordan.
func isInt(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(entity.DateLayout, fl.Field().String())
	return err == nil
}

// messages motivo por tag de validación.
var messages = map[string]string{
	"required": "es obligatorio",
	"int":      "debe ser un número entero",
	"decimal":  "debe ser un número",
	"date":     "debe tener formato AAAA-MM-DD",
	"email":    "debe ser un correo válido",
	"oneof":    "no es un valor permitido",
	"max":      "es demasiado largo",
}

// Check valida in y traduce los errores a *domain.ValidationError con los
// nombres de campo que ve el usuario.
func Check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "min" && fe.Kind() == reflect.String {
		return "debe tener al menos " + fe.Param() + " caracteres"
	}
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return "no pasó la regla " + fe.Tag()
}
