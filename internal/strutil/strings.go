package strutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	bracketsRe = regexp.MustCompile(`(\[(.*?)\]|\((.*?)\))`)
	nonAlphaRe = regexp.MustCompile(`[^a-zA-Z]+`)
)

// Upper returns s in upper case. Currency codes are compared in this form
func Upper(s string) string {
	// a Caser keeps state between calls, so it is not shared
	return cases.Upper(language.Und).String(s)
}

// RemoveNonAlpha removes everything except ASCII letters
// For example RemoveNonAlpha(" u.s.d ") return "usd"
func RemoveNonAlpha(s string) string {
	return nonAlphaRe.ReplaceAllString(s, "")
}

// RemoveContentIntoBrackets removes content inside brackets, including brackets
func RemoveContentIntoBrackets(s string) string {
	return bracketsRe.ReplaceAllString(s, "")
}

// RemoveExtraSpaces removes unnecessary spaces in the string
// For example RemoveExtraSpaces("hello  world  ") return "hello world"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.Trim(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
			return ' '
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s), " ")
}

// CleanName turns an ISO 4217 entity or currency name into a display name:
// bracketed remarks are dropped and whitespace is collapsed
// For example CleanName("Bolívar Soberano (FUND)  ") return "Bolívar Soberano"
func CleanName(s string) string {
	return RemoveExtraSpaces(RemoveContentIntoBrackets(s))
}
