package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago. La clave es compuesta: cliente + número de cheque.
type Payment struct {
	CustomerNumber int
	CheckNumber    string
	PaymentDate    time.Time
	Amount         decimal.Decimal
}

// Key clave compuesta "cliente/cheque".
func (p Payment) Key() string {
	return PaymentKey(p.CustomerNumber, p.CheckNumber)
}

// PaymentKey arma la clave compuesta de un pago.
func PaymentKey(customerNumber int, checkNumber string) string {
	return strconv.Itoa(customerNumber) + "/" + checkNumber
}

// ParsePaymentKey separa la clave compuesta "cliente/cheque".
func ParsePaymentKey(key string) (customerNumber int, checkNumber string, err error) {
	left, right, ok := strings.Cut(key, "/")
	if !ok || right == "" {
		return 0, "", fmt.Errorf("clave de pago inválida %q", key)
	}
	customerNumber, err = strconv.Atoi(left)
	if err != nil {
		return 0, "", fmt.Errorf("clave de pago inválida %q: %w", key, err)
	}
	return customerNumber, right, nil
}
