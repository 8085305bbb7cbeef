package backend

import (
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
	"github.com/jhoicas/classicmodels-admin/internal/domain/repository"
)

// ── Empleados ─────────────────────────────────────────────────────────────────

type employeeWire struct {
	EmployeeNumber int          `json:"employeeNumber"`
	LastName       string       `json:"lastName"`
	FirstName      string       `json:"firstName"`
	Extension      string       `json:"extension"`
	Email          string       `json:"email"`
	Office         *officeRef   `json:"office"`
	OfficeCode     *officeRef   `json:"officeCode,omitempty"`
	ReportsTo      *employeeRef `json:"reportsTo"`
	JobTitle       string       `json:"jobTitle"`
}

func employeeFromWire(w employeeWire) (entity.Employee, error) {
	e := entity.Employee{
		Number:    w.EmployeeNumber,
		LastName:  w.LastName,
		FirstName: w.FirstName,
		Extension: w.Extension,
		Email:     w.Email,
		JobTitle:  w.JobTitle,
	}
	office := w.Office
	if office == nil {
		office = w.OfficeCode
	}
	if office != nil {
		e.OfficeCode = office.Code
	}
	if w.ReportsTo != nil {
		e.ReportsTo = &entity.EmployeeRef{
			Number:    w.ReportsTo.EmployeeNumber,
			FirstName: w.ReportsTo.FirstName,
			LastName:  w.ReportsTo.LastName,
		}
	}
	return e, nil
}

func employeeToWire(e entity.Employee) employeeWire {
	w := employeeWire{
		EmployeeNumber: e.Number,
		LastName:       e.LastName,
		FirstName:      e.FirstName,
		Extension:      e.Extension,
		Email:          e.Email,
		JobTitle:       e.JobTitle,
	}
	if e.OfficeCode != "" {
		w.Office = &officeRef{codeRef{Code: e.OfficeCode}}
	}
	if e.ReportsTo != nil {
		w.ReportsTo = &employeeRef{EmployeeNumber: e.ReportsTo.Number}
	}
	return w
}

// NewEmployeeRepository GET/POST /employees. El backend no expone detalle, PUT ni DELETE.
func NewEmployeeRepository(c *Client) repository.EmployeeRepository {
	return &restResource[entity.Employee, employeeWire]{
		c:        c,
		path:     "/employees",
		verbs:    verbCreate,
		toEntity: employeeFromWire,
		toWire:   employeeToWire,
		itemPath: defaultItemPath("/employees"),
	}
}

// ── Oficinas ──────────────────────────────────────────────────────────────────

type officeWire struct {
	OfficeCode   string    `json:"officeCode"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 optString `json:"addressLine2"`
	State        optString `json:"state"`
	Country      string    `json:"country"`
	PostalCode   string    `json:"postalCode"`
	Territory    string    `json:"territory"`
}

func officeFromWire(w officeWire) (entity.Office, error) {
	return entity.Office{
		Code:         w.OfficeCode,
		City:         w.City,
		Phone:        w.Phone,
		AddressLine1: w.AddressLine1,
		AddressLine2: string(w.AddressLine2),
		State:        string(w.State),
		Country:      w.Country,
		PostalCode:   w.PostalCode,
		Territory:    w.Territory,
	}, nil
}

func officeToWire(o entity.Office) officeWire {
	return officeWire{
		OfficeCode:   o.Code,
		City:         o.City,
		Phone:        o.Phone,
		AddressLine1: o.AddressLine1,
		AddressLine2: optString(o.AddressLine2),
		State:        optString(o.State),
		Country:      o.Country,
		PostalCode:   o.PostalCode,
		Territory:    o.Territory,
	}
}

// NewOfficeRepository GET/POST /offices, GET/PUT/DELETE /offices/{code}.
func NewOfficeRepository(c *Client) repository.OfficeRepository {
	return &restResource[entity.Office, officeWire]{
		c:        c,
		path:     "/offices",
		verbs:    allVerbs,
		toEntity: officeFromWire,
		toWire:   officeToWire,
		itemPath: defaultItemPath("/offices"),
	}
}
