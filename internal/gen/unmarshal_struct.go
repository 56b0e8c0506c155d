package gen

// Ccy is one registry record as it is rendered into the label package
type Ccy struct {
	Code       string
	Number     int
	MinorUnits int
	Name       string
	Symbol     string
}

// CurrencyCodes is the ISO 4217 list one published by SIX
type CurrencyCodes struct {
	Published string   `xml:"Pblshd,attr"`
	Table     ISOTable `xml:"CcyTbl"`
}

type ISOTable struct {
	Entries []ISOEntry `xml:"CcyNtry"`
}

// ISOEntry is a country and its currency. A currency shared by several countries
// has an entry per country, a country without a currency has an empty Code
type ISOEntry struct {
	Country    string `xml:"CtryNm"`
	Name       string `xml:"CcyNm"`
	Code       string `xml:"Ccy"`
	Number     int    `xml:"CcyNbr"`
	MinorUnits string `xml:"CcyMnrUnts"`
}

// CurrencyNames is the CLDR en-001 currencies document
type CurrencyNames struct {
	Main struct {
		Locale struct {
			Numbers struct {
				Currencies map[string]CLDRCurrency `json:"currencies"`
			} `json:"numbers"`
		} `json:"en-001"`
	} `json:"main"`
}

type CLDRCurrency struct {
	DisplayName string `json:"displayName"`
	Symbol      string `json:"symbol"`
	Narrow      string `json:"symbol-alt-narrow"`
}

// Lookup returns the CLDR record of an uppercase ISO code
func (n CurrencyNames) Lookup(code string) (CLDRCurrency, bool) {
	c, ok := n.Main.Locale.Numbers.Currencies[code]
	return c, ok
}
