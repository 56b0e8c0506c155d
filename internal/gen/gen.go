package gen

import (
	"bytes"
	"embed"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"go/format"
	"hash"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kopeck/internal/hashio"
	"github.com/robotomize/kopeck/internal/strutil"
)

const (
	AssetsCurrencyCodesFile = "currency_codes.xml"
	AssetsCurrencyNamesFile = "currency_names.json"
	ISOGenFileName          = "iso"
	CurrencyGenFileName     = "currency"
)

const SuffixGenFileName = "_gen.go"

// MinorUnits is the only minor unit exponent the registry supports
const MinorUnits = 2

const (
	isoTemplate      = "iso.tmpl"
	currencyTemplate = "currency.tmpl"
)

var ErrHashingContentEqual = errors.New("hash of the generated file is equivalent to the previous version")

var defaultHashTypeFunc = hashio.MD5()

var (
	//go:embed templates/*.tmpl
	templates embed.FS
	//go:embed assets
	assets embed.FS
)

type AssetsMapFunc func(b []byte, filename string) error

func ReadAssets(dir string) func(AssetsMapFunc) error {
	return func(mapFunc AssetsMapFunc) error {
		entries, err := assets.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read dir: %w", err)
		}

		for _, entry := range entries {
			// embed.FS paths are slash separated on every platform
			b, err := assets.ReadFile(path.Join(dir, entry.Name()))
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			if err := mapFunc(b, entry.Name()); err != nil {
				return fmt.Errorf("call mapFunc: %w", err)
			}
		}

		return nil
	}
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
	}
}

func Template() *template.Template {
	tmpl := template.New("templates").Funcs(Funcs())
	tmpl = template.Must(tmpl.ParseFS(templates, "templates/*.tmpl"))
	return tmpl
}

// Load reads the embedded ISO 4217 and CLDR assets and returns the registry records ordered by code.
// Currencies with a minor unit exponent other than MinorUnits are skipped. The display name comes
// from CLDR, falling back to the ISO name, the symbol is the CLDR narrow symbol and may be empty
func Load() ([]Ccy, error) {
	var (
		codes CurrencyCodes
		names CurrencyNames
	)

	iterFunc := ReadAssets("assets")

	if err := iterFunc(func(b []byte, filename string) error {
		switch filename {
		case AssetsCurrencyCodesFile:
			if err := xml.Unmarshal(b, &codes); err != nil {
				return fmt.Errorf("xml unmarshal: %w", err)
			}
		case AssetsCurrencyNamesFile:
			if err := json.Unmarshal(b, &names); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
		default:
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("iterate func: %w", err)
	}

	currencies := make(map[string]Ccy, len(codes.Table.Entries))

	for _, entry := range codes.Table.Entries {
		code := strutil.Upper(strutil.RemoveNonAlpha(entry.Code))
		if len(code) != 3 {
			continue
		}

		if _, ok := currencies[code]; ok {
			continue
		}

		// N.A. for funds and metals
		units, err := strconv.Atoi(entry.MinorUnits)
		if err != nil || units != MinorUnits {
			continue
		}

		ccy := Ccy{
			Code:       code,
			Number:     entry.Number,
			MinorUnits: units,
			Name:       strutil.CleanName(entry.Name),
		}

		if cldr, ok := names.Lookup(code); ok {
			if cldr.DisplayName != "" {
				ccy.Name = cldr.DisplayName
			}
			ccy.Symbol = cldr.Narrow
		}

		currencies[code] = ccy
	}

	list := make([]Ccy, 0, len(currencies))
	for _, ccy := range currencies {
		list = append(list, ccy)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})

	return list, nil
}

// Render executes the named template over the currencies and gofmts the result
func Render(tmplName string, currencies []Ccy) ([]byte, error) {
	w := newWriter(bytes.NewBuffer(make([]byte, 0, 512)), Template())

	if err := w.generate(tmplName, struct {
		Currencies []Ccy
	}{
		Currencies: currencies,
	}); err != nil {
		return nil, fmt.Errorf("%s generate error: %w", tmplName, err)
	}

	b, err := format.Source(w.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", tmplName, err)
	}

	return b, nil
}

// Generate writes iso_gen.go and currency_gen.go of the label package into pathTo.
// A file whose content would not change is left untouched and reported with ErrHashingContentEqual
func Generate(pathTo string, hasherFunc func() hash.Hash) error {
	var multiErr multierror.Group

	if hasherFunc == nil {
		hasherFunc = defaultHashTypeFunc
	}

	currencies, err := Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	files := map[string]string{
		ISOGenFileName:      isoTemplate,
		CurrencyGenFileName: currencyTemplate,
	}

	for name, tmplName := range files {
		fileName := filepath.Join(pathTo, fmt.Sprintf("%s%s", name, SuffixGenFileName))
		tmplName := tmplName

		multiErr.Go(func() error {
			b, err := Render(tmplName, currencies)
			if err != nil {
				return err
			}

			same, err := hashio.SameContent(fileName, b, hasherFunc)
			if err != nil {
				return fmt.Errorf("compare %s: %w", fileName, err)
			}

			if same {
				return fmt.Errorf("warning: %w, file: %s", ErrHashingContentEqual, fileName)
			}

			if err := flush(fileName, b); err != nil {
				return fmt.Errorf("save the generated template to a file: %w", err)
			}

			return nil
		})
	}

	if err := multiErr.Wait(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return nil
}

func newWriter(buf *bytes.Buffer, t *template.Template) *writer {
	return &writer{buf: buf, t: t}
}

type writer struct {
	buf *bytes.Buffer
	t   *template.Template
}

func (w *writer) generate(tmplName string, data interface{}) error {
	if err := w.t.ExecuteTemplate(w.buf, tmplName, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}

func flush(fileName string, b []byte) error {
	if err := os.WriteFile(fileName, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
