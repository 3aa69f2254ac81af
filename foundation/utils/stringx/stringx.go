// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and the text
//              cleanup tasks that show up when parsing flat data files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Digits removes every non-digit rune from the string. Useful for numbers
// written with thousands separators or units ("4,692" -> "4692").
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GroupThousands formats a non-negative integer with a grouping separator
// every three digits ("4692" -> "4,692"). Negative values keep their sign.
func GroupThousands(n int, sep string) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := []byte(itoa(n))
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.Write(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.Write(digits[i : i+3])
	}
	return b.String()
}

// itoa converts a non-negative int to its decimal representation
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Truncate truncates a string to the specified length, adding an ellipsis if
// truncated. Unicode-aware and will not break multi-byte characters.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	keep := maxLen - ellipsisLen
	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

// CollapseSpaces replaces runs of whitespace with a single space and trims
// the result. Handy for display of values parsed from padded columns.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
