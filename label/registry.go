package label

import (
	"fmt"
	"sort"
	"sync"

	"github.com/robotomize/kopeck/internal/strutil"
)

var (
	registry     map[string]*Currency
	registryOnce sync.Once
)

// table builds the code index on first use. Readers never observe a partially built map
func table() map[string]*Currency {
	registryOnce.Do(func() {
		m := make(map[string]*Currency, len(Currencies))
		for _, iso := range Currencies {
			ccy := iso.Currency()
			m[ccy.code] = &ccy
		}
		registry = m
	})

	return registry
}

// Find returns the currency with the given alphabetic code. The lookup is case-insensitive.
// Find returns an error wrapping ErrInvalidCurrency if no currency matches
func Find(code string) (*Currency, error) {
	ccy, ok := table()[strutil.Upper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}

	return ccy, nil
}

// MustFind is like Find but panics if the code is unknown
func MustFind(code string) *Currency {
	ccy, err := Find(code)
	if err != nil {
		panic(fmt.Sprintf("label.MustFind(%q): %v", code, err))
	}

	return ccy
}

// All returns every registered currency ordered by code
func All() []*Currency {
	m := table()
	list := make([]*Currency, 0, len(m))
	for _, ccy := range m {
		list = append(list, ccy)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].code < list[j].code
	})

	return list
}
