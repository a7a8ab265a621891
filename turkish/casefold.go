// Package turkish implements Turkish-aware case conversion.
//
// Standard Unicode case mapping folds the dotted and undotted I pairs
// incorrectly for Turkish text: uppercase İ must become lowercase i and
// uppercase I must become lowercase ı. The circumflexed vowels used in
// loanwords (â, î, û) are mapped explicitly as well so round trips keep
// their accents.
package turkish

import "strings"

var toLowerReplacer = strings.NewReplacer(
	"I", "ı",
	"İ", "i",
	"Â", "â",
	"Î", "î",
	"Û", "û",
)

var toUpperReplacer = strings.NewReplacer(
	"ı", "I",
	"i", "İ",
	"â", "Â",
	"î", "Î",
	"û", "Û",
)

// Lower lowercases s using Turkish casing rules.
func Lower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(toLowerReplacer.Replace(s))
}

// Upper uppercases s using Turkish casing rules.
func Upper(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(toUpperReplacer.Replace(s))
}
