package accesskey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nfce-engine/internal/accesskey"
	"github.com/rezonia/nfce-engine/internal/format"
)

// fixedSource always returns the same digits, making key builds
// deterministic in tests.
type fixedSource struct {
	digits string
}

func (s fixedSource) NumericCode(n int) string { return format.PadLeft(s.digits, n) }
func (s fixedSource) Token(n int) string       { return format.PadLeft(s.digits, n) }

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		// 1*2=2, 2%11=2, 11-2=9
		{"single digit", "1", 9},
		// weights 2..9 then back to 2: sum 46, 46%11=2, 11-2=9
		{"weight cycle resets after 9", "111111111", 9},
		// 1*2+2*3+3*4+4*5=40, 40%11=7, 11-7=4
		{"short sequence", "4321", 4},
		// full 43-digit prefixes with precomputed digits
		{"full prefix TO", "1724080000000000019165001000000042112345678", 0},
		{"full prefix SP", "3526011234567800019565003000001234187654321", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accesskey.CheckDigit(tt.digits))
		})
	}
}

func TestCheckDigit_Idempotent(t *testing.T) {
	prefix := "1724080000000000019165001000000042112345678"
	first := accesskey.CheckDigit(prefix)
	second := accesskey.CheckDigit(prefix)
	assert.Equal(t, first, second)
}

func TestBuild(t *testing.T) {
	builder := accesskey.NewBuilder(accesskey.WithRandomSource(fixedSource{digits: "12345678"}))

	key := builder.Build(accesskey.Params{
		UF:       "TO",
		CNPJ:     "00000000000191",
		IssuedAt: time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC),
		Series:   1,
		Number:   42,
	})

	assert.Equal(t, "17240800000000000191650010000000421123456780", key.String())
	assert.Equal(t, "NFe17240800000000000191650010000000421123456780", key.DocumentID())
	assert.True(t, accesskey.Verify(key.String()))
}

func TestBuild_Segments(t *testing.T) {
	builder := accesskey.NewBuilder(accesskey.WithRandomSource(fixedSource{digits: "87654321"}))

	key := builder.Build(accesskey.Params{
		UF:       "SP",
		CNPJ:     "12.345.678/0001-95", // punctuation stripped
		IssuedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Series:   3,
		Number:   1234,
	})

	seg := key.Segments()
	assert.Equal(t, "35", seg.UF)
	assert.Equal(t, "2601", seg.YearMonth)
	assert.Equal(t, "12345678000195", seg.CNPJ)
	assert.Equal(t, "65", seg.Model)
	assert.Equal(t, "003", seg.Series)
	assert.Equal(t, "000001234", seg.Number)
	assert.Equal(t, "1", seg.EmissionType)
	assert.Equal(t, "87654321", seg.RandomCode)
	assert.Equal(t, "8", seg.CheckDigit)
}

func TestBuild_DefaultsNeverFail(t *testing.T) {
	builder := accesskey.NewBuilder()

	// Everything missing: unknown UF, empty CNPJ, zero time/series
	key := builder.Build(accesskey.Params{UF: "XX"})

	require.Len(t, key.String(), accesskey.KeyLength)
	assert.True(t, accesskey.Verify(key.String()))

	seg := key.Segments()
	assert.Equal(t, "17", seg.UF, "unknown state falls back to default UF")
	assert.Equal(t, "00000000000191", seg.CNPJ)
	assert.Equal(t, "001", seg.Series)
	assert.Equal(t, "000000000", seg.Number)
}

func TestBuild_RandomCodeOnlyDifference(t *testing.T) {
	issuedAt := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	params := accesskey.Params{UF: "TO", CNPJ: "00000000000191", IssuedAt: issuedAt, Series: 1, Number: 42}

	a := accesskey.NewBuilder(accesskey.WithRandomSource(fixedSource{digits: "11111111"})).Build(params)
	b := accesskey.NewBuilder(accesskey.WithRandomSource(fixedSource{digits: "22222222"})).Build(params)

	segA, segB := a.Segments(), b.Segments()
	assert.NotEqual(t, segA.RandomCode, segB.RandomCode)

	// Every other segment matches; only cNF and the dependent check
	// digit may differ.
	assert.Equal(t, segA.UF, segB.UF)
	assert.Equal(t, segA.YearMonth, segB.YearMonth)
	assert.Equal(t, segA.CNPJ, segB.CNPJ)
	assert.Equal(t, segA.Model, segB.Model)
	assert.Equal(t, segA.Series, segB.Series)
	assert.Equal(t, segA.Number, segB.Number)
	assert.Equal(t, segA.EmissionType, segB.EmissionType)
}

func TestBuild_GeneratedRandomCode(t *testing.T) {
	builder := accesskey.NewBuilder()
	key := builder.Build(accesskey.Params{UF: "SP", Number: 1})

	seg := key.Segments()
	assert.Len(t, seg.RandomCode, accesskey.RandomCodeLength)
	assert.True(t, accesskey.Verify(key.String()))
}

func TestParse(t *testing.T) {
	seg, err := accesskey.Parse("17240800000000000191650010000000421123456780")
	require.NoError(t, err)
	assert.Equal(t, "17", seg.UF)
	assert.Equal(t, "0", seg.CheckDigit)

	_, err = accesskey.Parse("123")
	require.Error(t, err)

	_, err = accesskey.Parse("1724080000000000019165001000000042112345678X")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	assert.True(t, accesskey.Verify("17240800000000000191650010000000421123456780"))

	// Wrong check digit
	assert.False(t, accesskey.Verify("17240800000000000191650010000000421123456781"))
	assert.False(t, accesskey.Verify("not-a-key"))
}

func TestStateCodes(t *testing.T) {
	codes := accesskey.StateCodes()
	assert.Equal(t, "17", codes["TO"])
	assert.Equal(t, "35", codes["SP"])
	assert.Len(t, codes, 27)

	// Mutating the copy must not affect the builder
	codes["TO"] = "99"
	builder := accesskey.NewBuilder()
	assert.Equal(t, "17", builder.StateCode("TO"))
}
