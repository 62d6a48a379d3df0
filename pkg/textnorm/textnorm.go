// Package textnorm provides accent and case folding for search comparisons,
// both over in-memory strings and as SQL expressions over stored columns.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Translation table applied to stored columns at query time. Each accented
// character maps to the unaccented character at the same position.
const (
	accentedChars = "áéíóúàèìòùäëïöüâêîôûñÁÉÍÓÚÀÈÌÒÙÄËÏÖÜÂÊÎÔÛÑ"
	plainChars    = "aeiouaeiouaeiouaeiounAEIOUAEIOUAEIOUAEIOUN"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and trims surrounding whitespace.
// Empty input yields an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(s)
	out, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return strings.TrimSpace(lowered)
	}
	return strings.TrimSpace(out)
}

// Column returns a SQL expression that lowercases and unaccents a stored
// column value, so LIKE comparisons against Normalize output are
// accent-insensitive. Postgres has TRANSLATE; sqlite and mysql do not, so
// they get an equivalent REPLACE chain.
func Column(name, dialect string) string {
	if dialect == "postgres" {
		return fmt.Sprintf("LOWER(TRANSLATE(%s, '%s', '%s'))", name, accentedChars, plainChars)
	}
	expr := name
	accented := []rune(accentedChars)
	plain := []rune(plainChars)
	for i, r := range accented {
		expr = fmt.Sprintf("REPLACE(%s, '%c', '%c')", expr, r, plain[i])
	}
	return "LOWER(" + expr + ")"
}

// SearchCondition ORs normalized LIKE comparisons over the given columns.
// The returned condition carries one placeholder per column; bind the same
// pattern for each.
func SearchCondition(columns []string, dialect string) string {
	conditions := make([]string, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, Column(column, dialect)+" LIKE ?")
	}
	return "(" + strings.Join(conditions, " OR ") + ")"
}
