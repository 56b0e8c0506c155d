package kopeck

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DisplayOption configures Display
type DisplayOption func(*displayOptions)

type displayOptions struct {
	width int
	fill  rune
}

// WithWidth places n fill characters between the currency symbol and the amount
func WithWidth(n int) DisplayOption {
	return func(o *displayOptions) {
		o.width = n
	}
}

// WithFill sets the padding character, a space by default
func WithFill(r rune) DisplayOption {
	return func(o *displayOptions) {
		o.fill = r
	}
}

// Display renders the amount as <symbol><fill...><sign><units>.<cents>, e.g. "$-20.00".
// Padding and symbol are omitted for currencies without a symbol.
// The zero amount is always "0", regardless of currency, sign and options
func (m Money) Display(opts ...DisplayOption) string {
	o := displayOptions{fill: ' '}
	for _, opt := range opts {
		opt(&o)
	}

	return m.display(o.width, o.fill)
}

func (m Money) display(width int, fill rune) string {
	if width < 0 {
		width = 0
	}

	if m.amount == 0 {
		return "0"
	}

	digits := strconv.FormatInt(m.amount, 10)
	if len(digits) <= fractionDigits {
		digits = strings.Repeat("0", fractionDigits+1-len(digits)) + digits
	}

	var b strings.Builder
	b.Grow(width + len(digits) + 8)

	if symbol := m.Currency().Symbol(); symbol != "" {
		b.WriteString(symbol)
		for i := 0; i < width; i++ {
			b.WriteRune(fill)
		}
	}

	if m.negative {
		b.WriteByte('-')
	}

	point := len(digits) - fractionDigits
	b.WriteString(digits[:point])
	b.WriteByte('.')
	b.WriteString(digits[point:])

	return b.String()
}

// String implements fmt.Stringer, see Display
func (m Money) String() string {
	return m.display(0, ' ')
}

// Format implements fmt.Formatter. The verbs 'v' and 's' print Display, 'q' prints it quoted.
// A width adds that many fill characters after the symbol, the '0' flag switches
// the fill character from a space to '0':
//
//	fmt.Sprintf("%1v", kopeck.MustParse("-20", "USD"))  // "$ -20.00"
//	fmt.Sprintf("%02v", kopeck.MustParse("20", "USD"))  // "$0020.00"
func (m Money) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
	default:
		fmt.Fprintf(state, "%%!%c(kopeck.Money=%s)", verb, m.String())
		return
	}

	fill := ' '
	if state.Flag('0') {
		fill = '0'
	}

	width := 0
	if w, ok := state.Width(); ok {
		width = w
	}

	s := m.display(width, fill)
	if verb == 'q' {
		s = strconv.Quote(s)
	}

	_, _ = io.WriteString(state, s)
}
