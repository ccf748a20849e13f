// Package format holds the numeric and string formatting rules of the
// target schema: fixed-width zero-padding and per-field decimal
// precision. The precisions differ on purpose (the schema validates
// field by field) and must not be unified.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PadLeft left-pads s with '0' to width. Inputs wider than width are
// truncated to the rightmost digits, so a runaway sequence number can
// never widen its field.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadLeftInt formats n and left-pads it to width.
func PadLeftInt(n int64, width int) string {
	return PadLeft(strconv.FormatInt(n, 10), width)
}

// Quantity serializes a quantity at 4 fraction digits (qCom/qTrib).
func Quantity(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// UnitPrice serializes a unit price at 10 fraction digits (vUnCom/vUnTrib).
func UnitPrice(d decimal.Decimal) string {
	return d.StringFixed(10)
}

// Amount serializes a monetary total at 2 fraction digits.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OnlyDigits strips everything but 0-9, used to normalize CNPJ and
// other punctuation-tolerant identifiers.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and consists only of 0-9.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
