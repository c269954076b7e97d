package core

import "strings"

// tokenDelimiters separate command-line tokens: space, tab, carriage return,
// newline and bell.
const tokenDelimiters = " \t\r\n\a"

// SplitLine breaks a command line into its whitespace-delimited tokens.
//
// Runs of delimiters count as a single separator, so splitting is idempotent
// on already-split input. There are no quoting or escape semantics: quote
// characters are ordinary characters. Empty or all-delimiter input yields an
// empty vector, and there is no upper bound on the number of tokens.
func SplitLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	})
}
