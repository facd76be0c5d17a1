package normalize

import "strings"

var turkishReplacer = strings.NewReplacer(
	"İ", "I", "ı", "i",
	"Ğ", "G", "ğ", "g",
	"Ö", "O", "ö", "o",
	"Ü", "U", "ü", "u",
	"Ş", "S", "ş", "s",
	"Ç", "C", "ç", "c",
)

// ReplaceToLatin substitutes Turkish-specific letters with their closest
// plain Latin equivalents. Other characters, including diacritics outside
// the Turkish alphabet, are not modified.
func ReplaceToLatin(s string) string {
	if s == "" {
		return s
	}
	return turkishReplacer.Replace(s)
}
