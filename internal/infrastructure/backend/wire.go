package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// ── Tipos JSON auxiliares ─────────────────────────────────────────────────────
//
// El backend no es consistente con las referencias: según el endpoint llegan
// como objeto anidado o como identificador plano. Los tipos *Ref aceptan ambas
// formas al leer y escriben siempre el objeto anidado que exige el backend.

var jsonNull = []byte("null")

func isNull(b []byte) bool { return bytes.Equal(bytes.TrimSpace(b), jsonNull) }

// optString serializa "" como null (campos opcionales del backend).
type optString string

func (s optString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return jsonNull, nil
	}
	return json.Marshal(string(s))
}

// money decimal que se lee desde número o string y se escribe como número JSON.
type money struct{ decimal.Decimal }

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *money) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.UnmarshalJSON(b)
}

// wireDate fecha "2006-01-02"; también acepta RFC 3339 al leer.
type wireDate struct{ time.Time }

func (d wireDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(d.Format(entity.DateLayout))
}

func (d *wireDate) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q", s)
	}
	d.Time = t
	return nil
}

// flexInt entero que puede llegar como número o como string numérico.
func flexInt(b []byte) (int, bool) {
	var n int
	if json.Unmarshal(b, &n) == nil {
		return n, true
	}
	var s string
	if json.Unmarshal(b, &s) == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v, true
		}
	}
	return 0, false
}

// employeeRef referencia a empleado: 1370 | "1370" | {"employeeNumber":1370,...}.
type employeeRef struct {
	EmployeeNumber int    `json:"employeeNumber"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
}

func (r *employeeRef) UnmarshalJSON(b []byte) error {
	if n, ok := flexInt(b); ok {
		*r = employeeRef{EmployeeNumber: n}
		return nil
	}
	type plain employeeRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("referencia de empleado: %w", err)
	}
	*r = employeeRef(p)
	return nil
}

func (r employeeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{"employeeNumber": r.EmployeeNumber})
}

// customerRef referencia a cliente: 103 | {"customerNumber":103,"customerName":...}.
type customerRef struct {
	CustomerNumber int    `json:"customerNumber"`
	CustomerName   string `json:"customerName,omitempty"`
}

func (r *customerRef) UnmarshalJSON(b []byte) error {
	if n, ok := flexInt(b); ok {
		*r = customerRef{CustomerNumber: n}
		return nil
	}
	type plain customerRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("referencia de cliente: %w", err)
	}
	*r = customerRef(p)
	return nil
}

func (r customerRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{"customerNumber": r.CustomerNumber})
}

// codeRef referencia por código string: "Classic Cars" | {"productLine":"Classic Cars"}.
// field es la clave del objeto anidado ("productLine", "officeCode").
type codeRef struct {
	Code  string
	field string
}

func (r *codeRef) decode(b []byte) error {
	var s string
	if json.Unmarshal(b, &s) == nil {
		r.Code = s
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("referencia %s: %w", r.field, err)
	}
	if raw, ok := obj[r.field]; ok {
		return json.Unmarshal(raw, &r.Code)
	}
	return fmt.Errorf("referencia sin campo %s", r.field)
}

type productLineRef struct{ codeRef }

func (r *productLineRef) UnmarshalJSON(b []byte) error {
	r.field = "productLine"
	return r.decode(b)
}

func (r productLineRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"productLine": r.Code})
}

type officeRef struct{ codeRef }

func (r *officeRef) UnmarshalJSON(b []byte) error {
	r.field = "officeCode"
	return r.decode(b)
}

func (r officeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"officeCode": r.Code})
}
