package usecase

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/classicmodels-admin/internal/application/listview"
	"github.com/jhoicas/classicmodels-admin/internal/domain/entity"
)

// Reglas de listado por entidad: campos de búsqueda, filtros, ordenamientos
// (el primero es el orden por defecto) y columnas.

// CustomerSpec listado de clientes.
func CustomerSpec() listview.Spec[entity.Customer] {
	return listview.Spec[entity.Customer]{
		Search: []func(entity.Customer) string{
			func(c entity.Customer) string { return c.Name },
			func(c entity.Customer) string { return c.ContactFirstName },
			func(c entity.Customer) string { return c.ContactLastName },
			func(c entity.Customer) string { return c.Phone },
			func(c entity.Customer) string { return c.City },
			func(c entity.Customer) string { return c.Country },
			func(c entity.Customer) string { return strconv.Itoa(c.Number) },
		},
		Filters: []listview.FilterField[entity.Customer]{
			{Key: "country", Label: "País", Value: func(c entity.Customer) string { return c.Country }},
			{Key: "state", Label: "Estado", Value: func(c entity.Customer) string { return c.State }},
		},
		Sorts: []listview.SortField[entity.Customer]{
			listview.ByText("name", "Nombre", func(c entity.Customer) string { return c.Name }),
			listview.ByDecimal("creditLimit", "Límite de crédito", func(c entity.Customer) decimal.Decimal { return c.CreditLimit }).Descending(),
			listview.ByText("city", "Ciudad", func(c entity.Customer) string { return c.City }),
			listview.ByText("country", "País", func(c entity.Customer) string { return c.Country }),
			listview.ByInt("number", "Número", func(c entity.Customer) int { return c.Number }),
		},
		DefaultSort: "name",
		Columns: []listview.Column[entity.Customer]{
			{Key: "number", Title: "Número", Value: func(c entity.Customer) string { return strconv.Itoa(c.Number) }},
			{Key: "name", Title: "Cliente", Value: func(c entity.Customer) string { return c.Name }},
			{Key: "contact", Title: "Contacto", Value: entity.Customer.ContactName},
			{Key: "phone", Title: "Teléfono", Value: func(c entity.Customer) string { return c.Phone }},
			{Key: "city", Title: "Ciudad", Value: func(c entity.Customer) string { return c.City }},
			{Key: "state", Title: "Estado", Value: func(c entity.Customer) string { return c.State }},
			{Key: "country", Title: "País", Value: func(c entity.Customer) string { return c.Country }},
			{Key: "salesRep", Title: "Representante", Value: func(c entity.Customer) string { return c.SalesRep.Label() }},
			{Key: "creditLimit", Title: "Límite de crédito", Value: func(c entity.Customer) string { return money(c.CreditLimit) }},
		},
		Key: entity.Customer.Key,
	}
}

// ProductSpec listado de productos.
func ProductSpec() listview.Spec[entity.Product] {
	return listview.Spec[entity.Product]{
		Search: []func(entity.Product) string{
			func(p entity.Product) string { return p.Name },
			func(p entity.Product) string { return p.Code },
			func(p entity.Product) string { return p.Vendor },
			func(p entity.Product) string { return p.Line },
			func(p entity.Product) string { return p.Scale },
		},
		Filters: []listview.FilterField[entity.Product]{
			{Key: "vendor", Label: "Proveedor", Value: func(p entity.Product) string { return p.Vendor }},
			{Key: "productLine", Label: "Línea", Value: func(p entity.Product) string { return p.Line }},
		},
		Sorts: []listview.SortField[entity.Product]{
			listview.ByText("name", "Nombre", func(p entity.Product) string { return p.Name }),
			listview.ByDecimal("price", "Precio de compra", func(p entity.Product) decimal.Decimal { return p.BuyPrice }),
			listview.ByDecimal("msrp", "MSRP", func(p entity.Product) decimal.Decimal { return p.MSRP }),
			listview.ByInt("stock", "Stock", func(p entity.Product) int { return p.QuantityInStock }),
			listview.ByText("code", "Código", func(p entity.Product) string { return p.Code }),
		},
		DefaultSort: "name",
		Columns: []listview.Column[entity.Product]{
			{Key: "code", Title: "Código", Value: func(p entity.Product) string { return p.Code }},
			{Key: "name", Title: "Producto", Value: func(p entity.Product) string { return p.Name }},
			{Key: "productLine", Title: "Línea", Value: func(p entity.Product) string { return p.Line }},
			{Key: "scale", Title: "Escala", Value: func(p entity.Product) string { return p.Scale }},
			{Key: "vendor", Title: "Proveedor", Value: func(p entity.Product) string { return p.Vendor }},
			{Key: "stock", Title: "Stock", Value: func(p entity.Product) string { return strconv.Itoa(p.QuantityInStock) }},
			{Key: "price", Title: "Precio de compra", Value: func(p entity.Product) string { return money(p.BuyPrice) }},
			{Key: "msrp", Title: "MSRP", Value: func(p entity.Product) string { return money(p.MSRP) }},
		},
		Key: entity.Product.Key,
	}
}

// OrderSpec listado de pedidos.
func OrderSpec() listview.Spec[entity.Order] {
	return listview.Spec[entity.Order]{
		Search: []func(entity.Order) string{
			func(o entity.Order) string { return strconv.Itoa(o.Number) },
			func(o entity.Order) string { return o.Status },
			func(o entity.Order) string { return strconv.Itoa(o.CustomerNumber) },
			func(o entity.Order) string { return o.Comments },
		},
		Filters: []listview.FilterField[entity.Order]{
			{Key: "status", Label: "Estado", Value: func(o entity.Order) string { return o.Status }},
		},
		Sorts: []listview.SortField[entity.Order]{
			listview.ByTime("orderDate", "Fecha", func(o entity.Order) time.Time { return o.OrderDate }).Descending(),
			listview.ByInt("number", "Número", func(o entity.Order) int { return o.Number }),
			listview.ByTime("requiredDate", "Fecha requerida", func(o entity.Order) time.Time { return o.RequiredDate }),
			listview.ByText("status", "Estado", func(o entity.Order) string { return o.Status }),
		},
		DefaultSort: "orderDate",
		Columns: []listview.Column[entity.Order]{
			{Key: "number", Title: "Pedido", Value: func(o entity.Order) string { return strconv.Itoa(o.Number) }},
			{Key: "orderDate", Title: "Fecha", Value: func(o entity.Order) string { return day(o.OrderDate) }},
			{Key: "requiredDate", Title: "Requerido", Value: func(o entity.Order) string { return day(o.RequiredDate) }},
			{Key: "shippedDate", Title: "Despachado", Value: func(o entity.Order) string {
				if o.ShippedDate == nil {
					return ""
				}
				return day(*o.ShippedDate)
			}},
			{Key: "status", Title: "Estado", Value: func(o entity.Order) string { return o.Status }},
			{Key: "customer", Title: "Cliente", Value: func(o entity.Order) string {
				if o.CustomerName != "" {
					return o.CustomerName
				}
				return strconv.Itoa(o.CustomerNumber)
			}},
			{Key: "comments", Title: "Comentarios", Value: func(o entity.Order) string { return o.Comments }},
		},
		Key: entity.Order.Key,
	}
}

// PaymentSpec listado de pagos.
func PaymentSpec() listview.Spec[entity.Payment] {
	return listview.Spec[entity.Payment]{
		Search: []func(entity.Payment) string{
			func(p entity.Payment) string { return p.CheckNumber },
			func(p entity.Payment) string { return strconv.Itoa(p.CustomerNumber) },
		},
		Filters: []listview.FilterField[entity.Payment]{
			{Key: "customer", Label: "Cliente", Value: func(p entity.Payment) string { return strconv.Itoa(p.CustomerNumber) }},
		},
		Sorts: []listview.SortField[entity.Payment]{
			listview.ByTime("paymentDate", "Fecha", func(p entity.Payment) time.Time { return p.PaymentDate }).Descending(),
			listview.ByDecimal("amount", "Monto", func(p entity.Payment) decimal.Decimal { return p.Amount }),
			listview.ByInt("customer", "Cliente", func(p entity.Payment) int { return p.CustomerNumber }),
			listview.ByText("check", "Cheque", func(p entity.Payment) string { return p.CheckNumber }),
		},
		DefaultSort: "paymentDate",
		Columns: []listview.Column[entity.Payment]{
			{Key: "customer", Title: "Cliente", Value: func(p entity.Payment) string { return strconv.Itoa(p.CustomerNumber) }},
			{Key: "check", Title: "Cheque", Value: func(p entity.Payment) string { return p.CheckNumber }},
			{Key: "paymentDate", Title: "Fecha", Value: func(p entity.Payment) string { return day(p.PaymentDate) }},
			{Key: "amount", Title: "Monto", Value: func(p entity.Payment) string { return money(p.Amount) }},
		},
		Key: entity.Payment.Key,
	}
}

// EmployeeSpec listado de empleados.
func EmployeeSpec() listview.Spec[entity.Employee] {
	return listview.Spec[entity.Employee]{
		Search: []func(entity.Employee) string{
			func(e entity.Employee) string { return e.FirstName },
			func(e entity.Employee) string { return e.LastName },
			func(e entity.Employee) string { return e.Email },
			func(e entity.Employee) string { return e.JobTitle },
			func(e entity.Employee) string { return e.Extension },
			func(e entity.Employee) string { return strconv.Itoa(e.Number) },
		},
		Filters: []listview.FilterField[entity.Employee]{
			{Key: "officeCode", Label: "Oficina", Value: func(e entity.Employee) string { return e.OfficeCode }},
			{Key: "jobTitle", Label: "Cargo", Value: func(e entity.Employee) string { return e.JobTitle }},
		},
		Sorts: []listview.SortField[entity.Employee]{
			listview.ByText("lastName", "Apellido", func(e entity.Employee) string { return e.LastName }),
			listview.ByText("firstName", "Nombre", func(e entity.Employee) string { return e.FirstName }),
			listview.ByInt("number", "Número", func(e entity.Employee) int { return e.Number }),
		},
		DefaultSort: "lastName",
		Columns: []listview.Column[entity.Employee]{
			{Key: "number", Title: "Número", Value: func(e entity.Employee) string { return strconv.Itoa(e.Number) }},
			{Key: "name", Title: "Nombre", Value: entity.Employee.FullName},
			{Key: "email", Title: "Correo", Value: func(e entity.Employee) string { return e.Email }},
			{Key: "extension", Title: "Extensión", Value: func(e entity.Employee) string { return e.Extension }},
			{Key: "officeCode", Title: "Oficina", Value: func(e entity.Employee) string { return e.OfficeCode }},
			{Key: "reportsTo", Title: "Reporta a", Value: func(e entity.Employee) string { return e.ReportsTo.Label() }},
			{Key: "jobTitle", Title: "Cargo", Value: func(e entity.Employee) string { return e.JobTitle }},
		},
		Key: entity.Employee.Key,
	}
}

// OfficeSpec listado de oficinas.
func OfficeSpec() listview.Spec[entity.Office] {
	return listview.Spec[entity.Office]{
		Search: []func(entity.Office) string{
			func(o entity.Office) string { return o.Code },
			func(o entity.Office) string { return o.City },
			func(o entity.Office) string { return o.Country },
			func(o entity.Office) string { return o.Phone },
			func(o entity.Office) string { return o.Territory },
		},
		Filters: []listview.FilterField[entity.Office]{
			{Key: "country", Label: "País", Value: func(o entity.Office) string { return o.Country }},
			{Key: "territory", Label: "Territorio", Value: func(o entity.Office) string { return o.Territory }},
		},
		Sorts: []listview.SortField[entity.Office]{
			listview.ByText("city", "Ciudad", func(o entity.Office) string { return o.City }),
			listview.ByText("code", "Código", func(o entity.Office) string { return o.Code }),
			listview.ByText("country", "País", func(o entity.Office) string { return o.Country }),
		},
		DefaultSort: "city",
		Columns: []listview.Column[entity.Office]{
			{Key: "code", Title: "Código", Value: func(o entity.Office) string { return o.Code }},
			{Key: "city", Title: "Ciudad", Value: func(o entity.Office) string { return o.City }},
			{Key: "phone", Title: "Teléfono", Value: func(o entity.Office) string { return o.Phone }},
			{Key: "address", Title: "Dirección", Value: func(o entity.Office) string { return o.AddressLine1 }},
			{Key: "state", Title: "Estado", Value: func(o entity.Office) string { return o.State }},
			{Key: "country", Title: "País", Value: func(o entity.Office) string { return o.Country }},
			{Key: "postalCode", Title: "Código postal", Value: func(o entity.Office) string { return o.PostalCode }},
			{Key: "territory", Title: "Territorio", Value: func(o entity.Office) string { return o.Territory }},
		},
		Key: entity.Office.Key,
	}
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entity.DateLayout)
}
