package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a transcribed utterance into the form keyword predicates
// match against: NFC, lower case, single spaces, no surrounding blanks.
func Normalize(utterance string) string {
	// A Caser keeps state between calls and must not be shared.
	folded := cases.Lower(language.English).String(norm.NFC.String(utterance))
	return strings.Join(strings.Fields(folded), " ")
}
