package pricesync

import (
	"regexp"
	"strings"
)

// codePattern matches a parenthesized card code inside a catalog product
// name: one to six letters, up to two digits, a hyphen, three digits.
// Covers OP / ST / EB / PRB prefixes and whatever the publisher adds next.
var codePattern = regexp.MustCompile(`(?i)\(([A-Z]{1,6}\d{0,2}-\d{3})\)`)

// junkPattern matches catalog artifacts that are not sellable card variants.
// Leaving these in would corrupt positional mapping for their code.
var junkPattern = regexp.MustCompile(`(?i)misprint|errata|error|test\s*print|sample|proxy`)

// ExtractCode recovers the canonical card code embedded in a product name.
// When a name contains several parenthesized codes, the last one is
// authoritative: catalog names sometimes repeat a set abbreviation earlier
// in the string. The result is upper-cased.
func ExtractCode(name string) (string, bool) {
	matches := codePattern.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.ToUpper(matches[len(matches)-1][1]), true
}

// IsJunkName reports whether a product name carries a known non-card marker.
func IsJunkName(name string) bool {
	return junkPattern.MatchString(name)
}
