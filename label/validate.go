package label

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the generated enumeration: every variant must resolve to a record with
// a three letter uppercase code, codes must be unique and each of the required codes must be present.
// All problems are reported at once
func Validate(required ...string) error {
	return validate(Currencies, required)
}

func validate(variants []ISO, required []string) error {
	var result *multierror.Error

	seen := make(map[string]ISO, len(variants))
	for _, iso := range variants {
		ccy := iso.Currency()
		if !isAlpha3(ccy.code) {
			result = multierror.Append(result, fmt.Errorf("%w: variant %d has malformed code %q", ErrInvalidCurrency, iso, ccy.code))
			continue
		}

		if prev, ok := seen[ccy.code]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: code %s is used by variants %d and %d", ErrInvalidCurrency, ccy.code, prev, iso))
			continue
		}

		seen[ccy.code] = iso
	}

	for _, code := range required {
		if _, ok := seen[code]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: required currency %s is missing", ErrInvalidCurrency, code))
		}
	}

	return result.ErrorOrNil()
}

func isAlpha3(code string) bool {
	if len(code) != 3 {
		return false
	}

	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}

	return true
}
