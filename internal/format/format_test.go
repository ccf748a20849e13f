package format_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/nfce-engine/internal/format"
)

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "00042", format.PadLeft("42", 5))
	assert.Equal(t, "42", format.PadLeft("42", 2))

	// Overflow truncates to the rightmost digits
	assert.Equal(t, "345", format.PadLeft("12345", 3))
}

func TestPadLeftInt(t *testing.T) {
	assert.Equal(t, "000000042", format.PadLeftInt(42, 9))
	assert.Equal(t, "001", format.PadLeftInt(1, 3))
}

func TestQuantity(t *testing.T) {
	// Quantities always carry 4 fraction digits
	assert.Equal(t, "2.0000", format.Quantity(dec.NewFromInt(2)))
	assert.Equal(t, "0.5000", format.Quantity(dec.RequireFromString("0.5")))
}

func TestUnitPrice(t *testing.T) {
	// Unit prices always carry 10 fraction digits
	assert.Equal(t, "10.0000000000", format.UnitPrice(dec.NewFromInt(10)))
	assert.Equal(t, "3.9900000000", format.UnitPrice(dec.RequireFromString("3.99")))
}

func TestAmount(t *testing.T) {
	// Monetary totals always carry 2 fraction digits
	assert.Equal(t, "20.00", format.Amount(dec.NewFromInt(20)))
	assert.Equal(t, "19.99", format.Amount(dec.RequireFromString("19.99")))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678000195", format.OnlyDigits("12.345.678/0001-95"))
	assert.Equal(t, "", format.OnlyDigits("no digits"))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, format.IsDigits("0123456789"))
	assert.False(t, format.IsDigits(""))
	assert.False(t, format.IsDigits("12a4"))
}

func TestPseudoSource_NumericCode(t *testing.T) {
	src := format.NewPseudoSource()
	for _, n := range []int{1, 8, 44} {
		code := src.NumericCode(n)
		assert.Len(t, code, n)
		assert.True(t, format.IsDigits(code))
	}
}

func TestPseudoSource_Token(t *testing.T) {
	src := format.NewPseudoSource()
	token := src.Token(28)
	assert.Len(t, token, 28)
}

func TestCryptoSource(t *testing.T) {
	src := format.NewCryptoSource()
	code := src.NumericCode(8)
	assert.Len(t, code, 8)
	assert.True(t, format.IsDigits(code))
	assert.Len(t, src.Token(16), 16)
}
