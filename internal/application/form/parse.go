package form

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// ── Customer ──

type customerInput struct {
	Number           string `form:"customerNumber" validate:"required,int"`
	Name             string `form:"customerName" validate:"required,max=50"`
	ContactLastName  string `form:"contactLastName" validate:"required"`
	ContactFirstName string `form:"contactFirstName" validate:"required"`
	Phone            string `form:"phone" validate:"required"`
	AddressLine1     string `form:"addressLine1" validate:"required"`
	AddressLine2     string `form:"addressLine2"`
	City             string `form:"city" validate:"required"`
	State            string `form:"state"`
	PostalCode       string `form:"postalCode"`
	Country          string `form:"country" validate:"required"`
	SalesRep         string `form:"salesRepEmployeeNumber" validate:"omitempty,int"`
	CreditLimit      string `form:"creditLimit" validate:"omitempty,decimal"`
}

// ParseCustomer valida el formulario de cliente.
func ParseCustomer(s State) (entity.Customer, error) {
	in := customerInput{
		Number:           s.Get("customerNumber"),
		Name:             s.Get("customerName"),
		ContactLastName:  s.Get("contactLastName"),
		ContactFirstName: s.Get("contactFirstName"),
		Phone:            s.Get("phone"),
		AddressLine1:     s.Get("addressLine1"),
		AddressLine2:     s.Get("addressLine2"),
		City:             s.Get("city"),
		State:            s.Get("state"),
		PostalCode:       s.Get("postalCode"),
		Country:          s.Get("country"),
		SalesRep:         s.Get("salesRepEmployeeNumber"),
		CreditLimit:      s.Get("creditLimit"),
	}
	if err := Check(in); err != nil {
		return entity.Customer{}, err
	}
	c := entity.Customer{
		Number:           atoi(in.Number),
		Name:             in.Name,
		ContactLastName:  in.ContactLastName,
		ContactFirstName: in.ContactFirstName,
		Phone:            in.Phone,
		AddressLine1:     in.AddressLine1,
		AddressLine2:     in.AddressLine2,
		City:             in.City,
		State:            in.State,
		PostalCode:       in.PostalCode,
		Country:          in.Country,
		CreditLimit:      dec(in.CreditLimit),
	}
	if in.SalesRep != "" {
		c.SalesRep = &entity.EmployeeRef{Number: atoi(in.SalesRep)}
	}
	return c, nil
}

// CustomerState formulario de edición precargado.
func CustomerState(c entity.Customer) State {
	v := map[string]string{
		"customerNumber":   itoa(c.Number),
		"customerName":     c.Name,
		"contactLastName":  c.ContactLastName,
		"contactFirstName": c.ContactFirstName,
		"phone":            c.Phone,
		"addressLine1":     c.AddressLine1,
		"addressLine2":     c.AddressLine2,
		"city":             c.City,
		"state":            c.State,
		"postalCode":       c.PostalCode,
		"country":          c.Country,
		"creditLimit":      c.CreditLimit.String(),
	}
	if c.SalesRep != nil {
		v["salesRepEmployeeNumber"] = itoa(c.SalesRep.Number)
	}
	return New(v)
}

// ── Product ──

type productInput struct {
	Code        string `form:"productCode" validate:"required,max=15"`
	Name        string `form:"productName" validate:"required"`
	Line        string `form:"productLine" validate:"required"`
	Scale       string `form:"productScale" validate:"required"`
	Vendor      string `form:"productVendor" validate:"required"`
	Description string `form:"productDescription"`
	Stock       string `form:"quantityInStock" validate:"required,int"`
	BuyPrice    string `form:"buyPrice" validate:"required,decimal"`
	MSRP        string `form:"MSRP" validate:"required,decimal"`
}

// ParseProduct valida el formulario de producto.
func ParseProduct(s State) (entity.Product, error) {
	in := productInput{
		Code:        s.Get("productCode"),
		Name:        s.Get("productName"),
		Line:        s.Get("productLine"),
		Scale:       s.Get("productScale"),
		Vendor:      s.Get("productVendor"),
		Description: s.Get("productDescription"),
		Stock:       s.Get("quantityInStock"),
		BuyPrice:    s.Get("buyPrice"),
		MSRP:        s.Get("MSRP"),
	}
	if err := Check(in); err != nil {
		return entity.Product{}, err
	}
	return entity.Product{
		Code:            in.Code,
		Name:            in.Name,
		Line:            in.Line,
		Scale:           in.Scale,
		Vendor:          in.Vendor,
		Description:     in.Description,
		QuantityInStock: atoi(in.Stock),
		BuyPrice:        dec(in.BuyPrice),
		MSRP:            dec(in.MSRP),
	}, nil
}

// ProductState formulario de edición precargado.
func ProductState(p entity.Product) State {
	return New(map[string]string{
		"productCode":        p.Code,
		"productName":        p.Name,
		"productLine":        p.Line,
		"productScale":       p.Scale,
		"productVendor":      p.Vendor,
		"productDescription": p.Description,
		"quantityInStock":    itoa(p.QuantityInStock),
		"buyPrice":           p.BuyPrice.String(),
		"MSRP":               p.MSRP.String(),
	})
}

// ── Order ──

type orderInput struct {
	Number       string `form:"orderNumber" validate:"required,int"`
	OrderDate    string `form:"orderDate" validate:"required,date"`
	RequiredDate string `form:"requiredDate" validate:"required,date"`
	ShippedDate  string `form:"shippedDate" validate:"omitempty,date"`
	Status       string `form:"status" validate:"required,oneof='In Process' Shipped 'On Hold' Cancelled Resolved Disputed"`
	Comments     string `form:"comments"`
	Customer     string `form:"customerNumber" validate:"required,int"`
}

// ParseOrder valida el formulario de pedido.
func ParseOrder(s State) (entity.Order, error) {
	in := orderInput{
		Number:       s.Get("orderNumber"),
		OrderDate:    s.Get("orderDate"),
		RequiredDate: s.Get("requiredDate"),
		ShippedDate:  s.Get("shippedDate"),
		Status:       s.Get("status"),
		Comments:     s.Get("comments"),
		Customer:     s.Get("customerNumber"),
	}
	if err := Check(in); err != nil {
		return entity.Order{}, err
	}
	o := entity.Order{
		Number:         atoi(in.Number),
		OrderDate:      date(in.OrderDate),
		RequiredDate:   date(in.RequiredDate),
		Status:         in.Status,
		Comments:       in.Comments,
		CustomerNumber: atoi(in.Customer),
	}
	if in.ShippedDate != "" {
		d := date(in.ShippedDate)
		o.ShippedDate = &d
	}
	return o, nil
}

// OrderState formulario de edición precargado.
func OrderState(o entity.Order) State {
	v := map[string]string{
		"orderNumber":    itoa(o.Number),
		"orderDate":      fmtDate(o.OrderDate),
		"requiredDate":   fmtDate(o.RequiredDate),
		"status":         o.Status,
		"comments":       o.Comments,
		"customerNumber": itoa(o.CustomerNumber),
	}
	if o.ShippedDate != nil {
		v["shippedDate"] = fmtDate(*o.ShippedDate)
	}
	return New(v)
}

// ── Payment ──

type paymentInput struct {
	Customer    string `form:"customerNumber" validate:"required,int"`
	CheckNumber string `form:"checkNumber" validate:"required,max=50"`
	PaymentDate string `form:"paymentDate" validate:"required,date"`
	Amount      string `form:"amount" validate:"required,decimal"`
}

// ParsePayment valida el formulario de pago. El monto "100.50" queda como
// decimal 100.5.
func ParsePayment(s State) (entity.Payment, error) {
	in := paymentInput{
		Customer:    s.Get("customerNumber"),
		CheckNumber: s.Get("checkNumber"),
		PaymentDate: s.Get("paymentDate"),
		Amount:      s.Get("amount"),
	}
	if err := Check(in); err != nil {
		return entity.Payment{}, err
	}
	return entity.Payment{
		CustomerNumber: atoi(in.Customer),
		CheckNumber:    in.CheckNumber,
		PaymentDate:    date(in.PaymentDate),
		Amount:         dec(in.Amount),
	}, nil
}

// PaymentState formulario de edición precargado.
func PaymentState(p entity.Payment) State {
	return New(map[string]string{
		"customerNumber": itoa(p.CustomerNumber),
		"checkNumber":    p.CheckNumber,
		"paymentDate":    fmtDate(p.PaymentDate),
		"amount":         p.Amount.String(),
	})
}

// ── Employee ──

type employeeInput struct {
	Number     string `form:"employeeNumber" validate:"required,int"`
	LastName   string `form:"lastName" validate:"required"`
	FirstName  string `form:"firstName" validate:"required"`
	Extension  string `form:"extension" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	OfficeCode string `form:"officeCode" validate:"required"`
	ReportsTo  string `form:"reportsTo" validate:"omitempty,int"`
	JobTitle   string `form:"jobTitle" validate:"required"`
}

// ParseEmployee valida el formulario de empleado.
func ParseEmployee(s State) (entity.Employee, error) {
	in := employeeInput{
		Number:     s.Get("employeeNumber"),
		LastName:   s.Get("lastName"),
		FirstName:  s.Get("firstName"),
		Extension:  s.Get("extension"),
		Email:      s.Get("email"),
		OfficeCode: s.Get("officeCode"),
		ReportsTo:  s.Get("reportsTo"),
		JobTitle:   s.Get("jobTitle"),
	}
	if err := Check(in); err != nil {
		return entity.Employee{}, err
	}
	e := entity.Employee{
		Number:     atoi(in.Number),
		LastName:   in.LastName,
		FirstName:  in.FirstName,
		Extension:  in.Extension,
		Email:      in.Email,
		OfficeCode: in.OfficeCode,
		JobTitle:   in.JobTitle,
	}
	if in.ReportsTo != "" {
		e.ReportsTo = &entity.EmployeeRef{Number: atoi(in.ReportsTo)}
	}
	return e, nil
}

// ── Office ──

type officeInput struct {
	Code         string `form:"officeCode" validate:"required,max=10"`
	City         string `form:"city" validate:"required"`
	Phone        string `form:"phone" validate:"required"`
	AddressLine1 string `form:"addressLine1" validate:"required"`
	AddressLine2 string `form:"addressLine2"`
	State        string `form:"state"`
	Country      string `form:"country" validate:"required"`
	PostalCode   string `form:"postalCode" validate:"required"`
	Territory    string `form:"territory" validate:"required"`
}

// ParseOffice valida el formulario de oficina.
func ParseOffice(s State) (entity.Office, error) {
	in := officeInput{
		Code:         s.Get("officeCode"),
		City:         s.Get("city"),
		Phone:        s.Get("phone"),
		AddressLine1: s.Get("addressLine1"),
		AddressLine2: s.Get("addressLine2"),
		State:        s.Get("state"),
		Country:      s.Get("country"),
		PostalCode:   s.Get("postalCode"),
		Territory:    s.Get("territory"),
	}
	if err := Check(in); err != nil {
		return entity.Office{}, err
	}
	return entity.Office(in), nil
}

// OfficeState formulario de edición precargado.
func OfficeState(o entity.Office) State {
	return New(map[string]string{
		"officeCode":   o.Code,
		"city":         o.City,
		"phone":        o.Phone,
		"addressLine1": o.AddressLine1,
		"addressLine2": o.AddressLine2,
		"state":        o.State,
		"country":      o.Country,
		"postalCode":   o.PostalCode,
		"territory":    o.Territory,
	})
}

// Los valores ya pasaron la validación; los errores de conversión no ocurren.

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func dec(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, _ := decimal.NewFromString(s)
	return d
}

func date(s string) time.Time {
	t, _ := time.Parse(entity.DateLayout, s)
	return t
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entity.DateLayout)
}
