package kopeck

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
	"github.com/robotomize/kopeck/label"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the currency passed to Parse is not registered
const DefaultCurrency = "USD"

const (
	// fractionDigits is the number of minor unit digits of every supported currency
	fractionDigits = 2
	// roundingDigit is the position of the fractional digit that decides rounding
	roundingDigit = fractionDigits + 1
)

// Money is an amount of minor units in a currency. The magnitude and the sign are
// kept apart, so the value is amount / 100 with the sign applied.
// The zero value is 0 in DefaultCurrency. Money is immutable and safe for concurrent use
type Money struct {
	amount   int64
	negative bool
	currency *label.Currency
}

// Parse converts amount text into Money in the given currency.
//
// The text is scanned once from left to right:
//   - '-' marks the amount negative wherever it appears;
//   - '.' starts the fractional part, repeated points change nothing;
//   - the third fractional digit rounds the amount up by one minor unit when it is
//     greater than 4 and ends the scan;
//   - any other character is an error.
//
// Text without a point is a whole number of major units. An empty text is zero.
// If currency is not registered the result silently uses DefaultCurrency.
//
// Parse returns an error wrapping ErrInvalidAmount for unexpected characters and
// for values that overflow int64 minor units
func Parse(amount, currency string) (Money, error) {
	ccy, err := label.Find(currency)
	if err != nil {
		ccy, err = label.Find(DefaultCurrency)
		if err != nil {
			return Money{}, fmt.Errorf("default currency: %w", err)
		}
	}

	m := Money{currency: ccy}
	if amount == "" {
		return m, nil
	}

	var (
		units       int64
		decimalSeen bool
		fracDigits  int
		ok          bool
	)

ScanLoop:
	for i, r := range amount {
		switch {
		case r == '-':
			m.negative = true
		case r == '.':
			decimalSeen = true
		case r >= '0' && r <= '9':
			d := int64(r - '0')
			if decimalSeen {
				fracDigits++
				if fracDigits == roundingDigit {
					if d > 4 {
						if units, ok = overflow.Add64(units, 1); !ok {
							return Money{}, fmt.Errorf("%w: %q overflows when rounded", ErrInvalidAmount, amount)
						}
					}
					break ScanLoop
				}
			}

			if units, ok = overflow.Mul64(units, 10); !ok {
				return Money{}, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, amount)
			}

			if units, ok = overflow.Add64(units, d); !ok {
				return Money{}, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, amount)
			}
		default:
			return Money{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidAmount, r, i)
		}
	}

	var pad int
	switch {
	case !decimalSeen:
		pad = fractionDigits
	case fracDigits < fractionDigits:
		pad = fractionDigits - fracDigits
	}

	for ; pad > 0; pad-- {
		if units, ok = overflow.Mul64(units, 10); !ok {
			return Money{}, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, amount)
		}
	}

	m.amount = units

	return m, nil
}

// MustParse is like Parse but panics if the amount cannot be parsed.
// It simplifies initialization of variables holding amounts
func MustParse(amount, currency string) Money {
	m, err := Parse(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("kopeck.MustParse(%q, %q): %v", amount, currency, err))
	}

	return m
}

// ParseDefault parses amount in DefaultCurrency
func ParseDefault(amount string) (Money, error) {
	return Parse(amount, DefaultCurrency)
}

// MinorUnits returns the magnitude in minor units, e.g. 2000 for "$-20.00"
func (m Money) MinorUnits() int64 {
	return m.amount
}

// IsNegative reports whether the amount carries a minus sign. A negative zero is possible
func (m Money) IsNegative() bool {
	return m.negative
}

// IsZero reports whether the magnitude is zero
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Currency returns the registry record of the amount's currency
func (m Money) Currency() *label.Currency {
	if m.currency == nil {
		return label.MustFind(DefaultCurrency)
	}

	return m.currency
}

// Decimal returns the signed value in major units
func (m Money) Decimal() decimal.Decimal {
	units := m.amount
	if m.negative {
		units = -units
	}

	return decimal.New(units, -fractionDigits)
}
