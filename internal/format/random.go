package format

import (
	cryptorand "crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// RandomSource produces the random material the engine needs: the
// 8-digit cNF segment of the access key and placeholder signature
// data. Injectable so callers can swap the default pseudo-random
// source for a cryptographically strong one without changing the
// pipeline shape.
type RandomSource interface {
	// NumericCode returns exactly n decimal digits.
	NumericCode(n int) string

	// Token returns n characters drawn from a base64-style alphabet.
	Token(n int) string
}

// PseudoSource is the default RandomSource backed by math/rand/v2.
// Not suitable for anything that must be unpredictable.
type PseudoSource struct{}

// NewPseudoSource creates the default pseudo-random source.
func NewPseudoSource() *PseudoSource {
	return &PseudoSource{}
}

// NumericCode returns exactly n decimal digits.
func (s *PseudoSource) NumericCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + mathrand.IntN(10))
	}
	return string(b)
}

// Token returns n characters from the token alphabet.
func (s *PseudoSource) Token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[mathrand.IntN(len(tokenAlphabet))]
	}
	return string(b)
}

// CryptoSource is a RandomSource backed by crypto/rand.
type CryptoSource struct{}

// NewCryptoSource creates a cryptographically strong source.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// NumericCode returns exactly n decimal digits.
func (s *CryptoSource) NumericCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + cryptoIntN(10))
	}
	return string(b)
}

// Token returns n characters from the token alphabet.
func (s *CryptoSource) Token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[cryptoIntN(int64(len(tokenAlphabet)))]
	}
	return string(b)
}

func cryptoIntN(n int64) int64 {
	v, err := cryptorand.Int(cryptorand.Reader, big.NewInt(n))
	if err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; there is no useful recovery here.
		panic(err)
	}
	return v.Int64()
}
