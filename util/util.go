// Package util provides small domain-agnostic helpers.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Words splits a command line on whitespace, dropping empty fields.
func Words(line string) []string {
	return strings.Fields(line)
}
