// Package label is the registry of supported currencies. Every currency is a
// variant of the ISO enumeration and resolves to an immutable Currency record
// holding its ISO 4217 code, display name and narrow symbol.
//
// The enumeration and its records are generated by tools/gocygen, do not edit
// iso_gen.go and currency_gen.go by hand.
package label

import "errors"

//go:generate go run ../tools/gocygen -target .

// ErrInvalidCurrency is returned when a code does not name a supported currency
var ErrInvalidCurrency = errors.New("currency was not valid")

// ISO is a supported currency. The zero value is not a currency
type ISO uint8

// String returns the alphabetic code of c or an empty string for unknown variants
func (c ISO) String() string {
	return c.Currency().code
}

// Currency is an immutable currency record. Records live in the registry for the
// lifetime of the process and are shared by pointer
type Currency struct {
	code   string
	number int
	name   string
	symbol string
}

// Code returns the uppercase ISO 4217 alphabetic code, e.g. "USD"
func (c Currency) Code() string {
	return c.code
}

// Number returns the ISO 4217 numeric code, e.g. 840
func (c Currency) Number() int {
	return c.number
}

// Name returns the English display name, e.g. "US Dollar"
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the narrow symbol, e.g. "$". An empty symbol means that
// amounts are displayed without one
func (c Currency) Symbol() string {
	return c.symbol
}

func (c Currency) String() string {
	return c.code
}
