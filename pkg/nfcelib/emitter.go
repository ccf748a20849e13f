package nfcelib

import (
	"context"

	"github.com/rezonia/nfce-engine/internal/emitter"
	"github.com/rezonia/nfce-engine/internal/format"
	"github.com/rezonia/nfce-engine/internal/signature"
	"github.com/rezonia/nfce-engine/internal/tax"
)

// Result is the output of one emission: the signed XML document and
// its 44-digit access key, plus the QR material.
type Result = emitter.Result

// Signer is the pluggable signing capability. The built-in default is
// a placeholder producing structurally valid but cryptographically
// meaningless values; swap in a certificate-holding implementation
// before submitting documents to a real verifier.
type Signer = signature.Signer

// TaxResolver determines the approximate embedded-tax percentage per
// line; the built-in default applies one flat simplified rate.
type TaxResolver = tax.Resolver

// RandomSource feeds the key's random code and placeholder signature
// data; the default is pseudo-random.
type RandomSource = format.RandomSource

// Emitter is the public entry point wrapping the emission pipeline.
type Emitter struct {
	pipeline *emitter.Pipeline
}

// Option configures an Emitter.
type Option = emitter.Option

// WithSigner installs a real document signer.
func WithSigner(s Signer) Option {
	return emitter.WithSigner(s)
}

// WithTaxResolver installs an external tax engine.
func WithTaxResolver(r TaxResolver) Option {
	return emitter.WithTaxResolver(r)
}

// WithRandomSource installs a custom random source, e.g. the
// crypto-strong one for production use.
func WithRandomSource(src RandomSource) Option {
	return emitter.WithRandomSource(src)
}

// NewEmitter creates an emitter with the given options.
func NewEmitter(opts ...Option) *Emitter {
	return &Emitter{pipeline: emitter.NewPipeline(opts...)}
}

// Emit assembles, signs and authenticates one document. The whole call
// is a single unit of work resolving to the document and its access
// key; there are no partial results and no internal retries.
func (e *Emitter) Emit(
	ctx context.Context,
	order Order,
	issuer IssuerConfig,
	authority TaxAuthorityConfig,
	techResp TechResponsibleConfig,
	emission EmissionContext,
) (*Result, error) {
	return e.pipeline.Emit(ctx, order, issuer, authority, techResp, emission)
}
