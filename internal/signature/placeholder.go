package signature

import (
	"context"

	"github.com/rezonia/nfce-engine/internal/format"
)

// Placeholder field sizes, matching the shape of real SHA-1/RSA-2048
// material so the envelope stays structurally valid.
const (
	placeholderDigestLen    = 28
	placeholderSignatureLen = 344
	placeholderCertLen      = 1200
)

// PlaceholderSigner fills the envelope with structurally valid but
// cryptographically meaningless random values. Documents it signs will
// NOT pass any real verifier; it exists so the pipeline can run
// end-to-end before a certificate-holding Signer is integrated.
type PlaceholderSigner struct {
	random format.RandomSource
}

// NewPlaceholderSigner creates a placeholder signer. A nil source
// falls back to the default pseudo-random source.
func NewPlaceholderSigner(src format.RandomSource) *PlaceholderSigner {
	if src == nil {
		src = format.NewPseudoSource()
	}
	return &PlaceholderSigner{random: src}
}

// Sign returns random stand-ins for digest, signature and certificate.
// The canonical document is ignored on purpose.
func (s *PlaceholderSigner) Sign(ctx context.Context, _ []byte) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Data{
		DigestValue:    s.random.Token(placeholderDigestLen),
		SignatureValue: s.random.Token(placeholderSignatureLen),
		Certificate:    s.random.Token(placeholderCertLen),
	}, nil
}
