// Package accesskey builds and verifies the 44-digit NFC-e access key:
// cUF(2) + AAMM(4) + CNPJ(14) + mod(2) + serie(3) + nNF(9) + tpEmis(1)
// + cNF(8) + cDV(1). The trailing digit is a weighted modulo-11
// checksum over the first 43, so any key is self-verifying.
package accesskey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rezonia/nfce-engine/internal/format"
	"github.com/rezonia/nfce-engine/internal/model"
)

// Fixed key constants for this document type.
const (
	DocumentModel      = "65" // NFC-e
	EmissionTypeNormal = "1"  // own-initiative emission
	KeyLength          = 44
	RandomCodeLength   = 8

	// IDPrefix prepended to the key forms the document's Id attribute.
	IDPrefix = "NFe"
)

// Segments is the decomposed form of an access key.
type Segments struct {
	UF           string // 2 digits
	YearMonth    string // AAMM
	CNPJ         string // 14 digits
	Model        string // 2 digits
	Series       string // 3 digits
	Number       string // 9 digits
	EmissionType string // 1 digit
	RandomCode   string // 8 digits
	CheckDigit   string // 1 digit
}

// Key is a complete 44-digit access key.
type Key string

// String returns the raw 44-digit form.
func (k Key) String() string { return string(k) }

// DocumentID returns the document Id attribute derived from the key.
func (k Key) DocumentID() string { return IDPrefix + string(k) }

// Segments decomposes the key into its fixed-width fields.
func (k Key) Segments() Segments {
	s := string(k)
	return Segments{
		UF:           s[0:2],
		YearMonth:    s[2:6],
		CNPJ:         s[6:20],
		Model:        s[20:22],
		Series:       s[22:25],
		Number:       s[25:34],
		EmissionType: s[34:35],
		RandomCode:   s[35:43],
		CheckDigit:   s[43:44],
	}
}

// Params are the inputs of one key build. Missing optional fields take
// the documented defaults; Build never fails.
type Params struct {
	UF         string
	CNPJ       string
	IssuedAt   time.Time
	Series     int
	Number     int64
	RandomCode string // generated when empty
}

// Builder assembles access keys. It bundles the immutable state table
// and a random source; zero configuration beyond NewBuilder is needed.
type Builder struct {
	states map[string]string
	random format.RandomSource
}

// Option configures a Builder.
type Option func(*Builder)

// WithRandomSource replaces the default pseudo-random source.
func WithRandomSource(src format.RandomSource) Option {
	return func(b *Builder) { b.random = src }
}

// NewBuilder creates a key builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		states: StateCodes(),
		random: format.NewPseudoSource(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StateCode resolves a UF abbreviation to its numeric code, falling
// back to the default UF when the state is not recognized.
func (b *Builder) StateCode(uf string) string {
	if code, ok := b.states[strings.ToUpper(strings.TrimSpace(uf))]; ok {
		return code
	}
	return b.states[model.DefaultUF]
}

// Build assembles the 44-digit key for one emission. It never returns
// an error: absent inputs are substituted with the documented defaults
// so a key is always produced.
func (b *Builder) Build(p Params) Key {
	cnpj := format.OnlyDigits(p.CNPJ)
	if cnpj == "" {
		cnpj = model.DefaultCNPJ
	}
	issuedAt := p.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	series := p.Series
	if series <= 0 {
		series = model.DefaultSerie
	}
	random := p.RandomCode
	if !format.IsDigits(random) || len(random) != RandomCodeLength {
		random = b.random.NumericCode(RandomCodeLength)
	}

	prefix := b.StateCode(p.UF) +
		issuedAt.Format("0601") + // AAMM
		format.PadLeft(cnpj, 14) +
		DocumentModel +
		format.PadLeftInt(int64(series), 3) +
		format.PadLeftInt(p.Number, 9) +
		EmissionTypeNormal +
		random

	return Key(prefix + strconv.Itoa(CheckDigit(prefix)))
}

// CheckDigit computes the modulo-11 verification digit of a digit
// string. Scanning right to left, each digit is weighted 2,3,...,9,
// restarting at 2 after 9; the digit is 0 when sum mod 11 is 0 or 1,
// otherwise 11 minus the remainder.
func CheckDigit(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	remainder := sum % 11
	if remainder <= 1 {
		return 0
	}
	return 11 - remainder
}

// Parse validates the shape of a 44-digit key and decomposes it.
func Parse(s string) (Segments, error) {
	if len(s) != KeyLength {
		return Segments{}, fmt.Errorf("access key must be %d digits, got %d", KeyLength, len(s))
	}
	if !format.IsDigits(s) {
		return Segments{}, fmt.Errorf("access key must be numeric")
	}
	return Key(s).Segments(), nil
}

// Verify reports whether the key's trailing digit matches the checksum
// of its first 43 digits.
func Verify(s string) bool {
	if _, err := Parse(s); err != nil {
		return false
	}
	return int(s[KeyLength-1]-'0') == CheckDigit(s[:KeyLength-1])
}
