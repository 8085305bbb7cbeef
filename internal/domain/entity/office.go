package entity

// Office representa una oficina de ventas.
type Office struct {
	Code         string
	City         string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	State        string
	Country      string
	PostalCode   string
	Territory    string
}

// Key clave de selección: el código de oficina.
func (o Office) Key() string { return o.Code }
