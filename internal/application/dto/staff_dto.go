package dto

import "github.com/jhoicas/classicmodels-admin/internal/domain/entity"

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	Number     int                  `json:"employee_number"`
	LastName   string               `json:"last_name"`
	FirstName  string               `json:"first_name"`
	Extension  string               `json:"extension"`
	Email      string               `json:"email"`
	OfficeCode string               `json:"office_code"`
	ReportsTo  *EmployeeRefResponse `json:"reports_to,omitempty"`
	JobTitle   string               `json:"job_title"`
}

// NewEmployeeResponse mapea la entidad.
func NewEmployeeResponse(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		Number:     e.Number,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Extension:  e.Extension,
		Email:      e.Email,
		OfficeCode: e.OfficeCode,
		ReportsTo:  newEmployeeRef(e.ReportsTo),
		JobTitle:   e.JobTitle,
	}
}

// OfficeResponse salida de una oficina.
type OfficeResponse struct {
	Code         string `json:"office_code"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	Territory    string `json:"territory"`
}

// NewOfficeResponse mapea la entidad.
func NewOfficeResponse(o entity.Office) OfficeResponse {
	return OfficeResponse(o)
}
