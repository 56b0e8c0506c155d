package gen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/kopeck/internal/hashio"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	currencies, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(25, len(currencies)); diff != "" {
		t.Fatalf("bad expected len (-want, +got): %s", diff)
	}

	byCode := make(map[string]Ccy, len(currencies))
	for i, ccy := range currencies {
		if i > 0 && currencies[i-1].Code >= ccy.Code {
			t.Errorf("not ordered: %s before %s", currencies[i-1].Code, ccy.Code)
		}
		byCode[ccy.Code] = ccy
	}

	testCases := []struct {
		name     string
		code     string
		expected Ccy
	}{
		{
			name:     "test_load_cldr_name_and_sign",
			code:     "USD",
			expected: Ccy{Code: "USD", Number: 840, MinorUnits: 2, Name: "US Dollar", Symbol: "$"},
		},
		{
			name:     "test_load_cldr_name_overrides_iso",
			code:     "GBP",
			expected: Ccy{Code: "GBP", Number: 826, MinorUnits: 2, Name: "British Pound", Symbol: "£"},
		},
		{
			name:     "test_load_leading_zero_number",
			code:     "AUD",
			expected: Ccy{Code: "AUD", Number: 36, MinorUnits: 2, Name: "Australian Dollar", Symbol: "$"},
		},
		{
			name:     "test_load_without_narrow_symbol",
			code:     "CHF",
			expected: Ccy{Code: "CHF", Number: 756, MinorUnits: 2, Name: "Swiss Franc", Symbol: ""},
		},
		{
			name:     "test_load_iso_name_fallback",
			code:     "RSD",
			expected: Ccy{Code: "RSD", Number: 941, MinorUnits: 2, Name: "Serbian Dinar", Symbol: ""},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, byCode[tc.code]); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}

	for _, code := range []string{"JPY", "KWD", "XDR", "XXX", "XAU"} {
		if _, ok := byCode[code]; ok {
			t.Errorf("%s must be excluded from the registry", code)
		}
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Generate(dir, nil); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{ISOGenFileName, CurrencyGenFileName} {
		fileName := name + SuffixGenFileName

		got, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			t.Fatalf("read generated file: %v", err)
		}

		// the committed label package must be up to date with the assets
		want, err := os.ReadFile(filepath.Join("..", "..", "label", fileName))
		if err != nil {
			t.Fatalf("read label file: %v", err)
		}

		if diff := cmp.Diff(string(want), string(got)); diff != "" {
			t.Errorf("%s is stale, run gocygen (-want, +got):\n%s", fileName, diff)
		}
	}
}

func TestGenerate_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Generate(dir, hashio.SHA1()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	err := Generate(dir, hashio.SHA1())
	if !errors.Is(err, ErrHashingContentEqual) {
		t.Fatalf("second generate error = %v, want %v", err, ErrHashingContentEqual)
	}
}

func TestGenerate_BadTarget(t *testing.T) {
	t.Parallel()

	err := Generate(filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatalf("expected error for missing target dir")
	}

	if errors.Is(err, ErrHashingContentEqual) {
		t.Errorf("unexpected warning: %v", err)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	t.Parallel()

	if _, err := Render("symbol.tmpl", nil); err == nil {
		t.Errorf("expected error for unknown template")
	}
}
