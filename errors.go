package kopeck

import (
	"errors"

	"github.com/robotomize/kopeck/label"
)

var (
	// ErrInvalidAmount is returned when the amount text holds something other than digits, '.' and '-'
	// or when its value does not fit into the minor units counter
	ErrInvalidAmount = errors.New("amount is not a number")
	// ErrInvalidCurrency is returned when a currency code is not registered
	ErrInvalidCurrency = label.ErrInvalidCurrency
)
