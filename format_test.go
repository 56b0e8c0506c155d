package kopeck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/kopeck/label"
)

func TestMoney_Display(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		amount   string
		currency string
		opts     []DisplayOption
		expected string
	}{
		{
			name:     "test_display_default",
			amount:   "20.00",
			currency: "USD",
			expected: "$20.00",
		},
		{
			name:     "test_display_width",
			amount:   "20.00",
			currency: "USD",
			opts:     []DisplayOption{WithWidth(1)},
			expected: "$ 20.00",
		},
		{
			name:     "test_display_negative_width",
			amount:   "-20",
			currency: "USD",
			opts:     []DisplayOption{WithWidth(1)},
			expected: "$ -20.00",
		},
		{
			name:     "test_display_fill",
			amount:   "20.1",
			currency: "USD",
			opts:     []DisplayOption{WithWidth(3), WithFill('*')},
			expected: "$***20.10",
		},
		{
			name:     "test_display_fill_without_width",
			amount:   "20.1",
			currency: "USD",
			opts:     []DisplayOption{WithFill('*')},
			expected: "$20.10",
		},
		{
			name:     "test_display_multibyte_symbol",
			amount:   "3.5",
			currency: "PLN",
			opts:     []DisplayOption{WithWidth(2), WithFill('·')},
			expected: "zł··3.50",
		},
		{
			name:     "test_display_no_symbol_ignores_width",
			amount:   "-3.5",
			currency: "CHF",
			opts:     []DisplayOption{WithWidth(4)},
			expected: "-3.50",
		},
		{
			name:     "test_display_small",
			amount:   "0.07",
			currency: "EUR",
			expected: "€0.07",
		},
		{
			name:     "test_display_negative_width_ignored",
			amount:   "1",
			currency: "USD",
			opts:     []DisplayOption{WithWidth(-3)},
			expected: "$1.00",
		},
		{
			name:     "test_display_large_negative_width_ignored",
			amount:   "-1",
			currency: "USD",
			opts:     []DisplayOption{WithWidth(-100), WithFill('*')},
			expected: "$-1.00",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MustParse(tc.amount, tc.currency).Display(tc.opts...)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMoney_DisplayZeroCollapse(t *testing.T) {
	t.Parallel()

	amounts := []string{"", "0", "-0", "0.00", "-0.001", "0.004", "-"}
	options := [][]DisplayOption{
		nil,
		{WithWidth(1)},
		{WithWidth(5), WithFill('0')},
	}

	for _, ccy := range label.All() {
		for _, amount := range amounts {
			m := MustParse(amount, ccy.Code())
			for _, opts := range options {
				if got := m.Display(opts...); got != "0" {
					t.Errorf("%s %q displayed as %q, want \"0\"", ccy.Code(), amount, got)
				}
			}

			if got := fmt.Sprintf("%3v", m); got != "0" {
				t.Errorf("%s %q formatted as %q, want \"0\"", ccy.Code(), amount, got)
			}
		}
	}
}

func TestMoney_Format(t *testing.T) {
	t.Parallel()

	usd := MustParse("20", "USD")
	neg := MustParse("-20", "USD")

	testCases := []struct {
		name     string
		format   string
		value    Money
		expected string
	}{
		{name: "test_format_v", format: "%v", value: usd, expected: "$20.00"},
		{name: "test_format_s", format: "%s", value: usd, expected: "$20.00"},
		{name: "test_format_width", format: "%1v", value: usd, expected: "$ 20.00"},
		{name: "test_format_negative_width", format: "%1v", value: neg, expected: "$ -20.00"},
		{name: "test_format_zero_flag", format: "%02v", value: usd, expected: "$0020.00"},
		{name: "test_format_q", format: "%q", value: neg, expected: `"$-20.00"`},
		{name: "test_format_bad_verb", format: "%d", value: usd, expected: "%!d(kopeck.Money=$20.00)"},
		{name: "test_format_pound", format: "%v", value: MustParse("0.5", "GBP"), expected: "£0.50"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := fmt.Sprintf(tc.format, tc.value)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMoney_FormatSeveralVerbs(t *testing.T) {
	t.Parallel()

	usd := MustParse("20", "USD")

	testCases := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "test_width_then_plain", format: "%3v|%v|%s", expected: "$   20.00|$20.00|$20.00"},
		{name: "test_width_then_quote", format: "%1v|%q", expected: `$ 20.00|"$20.00"`},
		{name: "test_zero_flag_then_plain", format: "%02v|%v", expected: "$0020.00|$20.00"},
		{name: "test_plain_then_width", format: "%v|%2v", expected: "$20.00|$  20.00"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := strings.Count(tc.format, "%")
			args := make([]interface{}, n)
			for i := range args {
				args[i] = usd
			}

			got := fmt.Sprintf(tc.format, args...)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
