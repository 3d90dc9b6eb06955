package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lower-cases s and drops '_', '-' and spaces, so that
// "func_int", "FuncInt" and "func-int" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
