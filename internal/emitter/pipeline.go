// Package emitter wires the emission pipeline: access key, tax-encoded
// items, document assembly, QR authentication and signature envelope.
// One call in, one document out. The pipeline is a pure, stateless
// transform: no caching, no shared mutable state, no retries; a
// failure anywhere propagates to the caller with no partial result.
package emitter

import (
	"context"
	"time"

	"github.com/rezonia/nfce-engine/internal/accesskey"
	"github.com/rezonia/nfce-engine/internal/document"
	"github.com/rezonia/nfce-engine/internal/format"
	"github.com/rezonia/nfce-engine/internal/model"
	"github.com/rezonia/nfce-engine/internal/qrauth"
	"github.com/rezonia/nfce-engine/internal/signature"
	"github.com/rezonia/nfce-engine/internal/tax"
)

// Result is the output of one emission.
type Result struct {
	XML        string `json:"xmlString"`
	AccessKey  string `json:"chaveAcesso"`
	DocumentID string `json:"document_id"`
	QRCode     string `json:"qr_code"`
	ConsultURL string `json:"consult_url"`
}

// Pipeline composes the emission stages. Construct once, use from any
// number of goroutines; batch serialization against a rate-limited
// authority is the caller's concern.
type Pipeline struct {
	keys      *accesskey.Builder
	assembler *document.Assembler
	qr        *qrauth.Authenticator
	signer    signature.Signer
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSigner replaces the placeholder signer with a real one.
func WithSigner(s signature.Signer) Option {
	return func(p *Pipeline) { p.signer = s }
}

// WithRandomSource sets the random source for key codes and
// placeholder signature data.
func WithRandomSource(src format.RandomSource) Option {
	return func(p *Pipeline) {
		p.keys = accesskey.NewBuilder(accesskey.WithRandomSource(src))
		if _, ok := p.signer.(*signature.PlaceholderSigner); ok {
			p.signer = signature.NewPlaceholderSigner(src)
		}
	}
}

// WithTaxResolver plugs a tax engine into the line-item encoder.
func WithTaxResolver(r tax.Resolver) Option {
	return func(p *Pipeline) {
		p.assembler = document.NewAssembler(document.WithTaxEncoder(tax.NewEncoder(r)))
	}
}

// WithClock overrides the emission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a pipeline with the placeholder signer and
// default tax resolver.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		keys:      accesskey.NewBuilder(),
		assembler: document.NewAssembler(),
		qr:        qrauth.NewAuthenticator(),
		signer:    signature.NewPlaceholderSigner(nil),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit runs the full pipeline for one order. Missing configuration
// fields resolve to documented defaults and never fail the build; the
// only error paths are context cancellation and the signer.
func (p *Pipeline) Emit(
	ctx context.Context,
	order model.Order,
	issuer model.IssuerConfig,
	authority model.TaxAuthorityConfig,
	techResp model.TechResponsibleConfig,
	emission model.EmissionContext,
) (*Result, error) {
	issuer = issuer.Resolved()
	authority = authority.Resolved()
	techResp = techResp.Resolved()
	issuedAt := p.now()

	key := p.keys.Build(accesskey.Params{
		UF:       issuer.UF,
		CNPJ:     issuer.CNPJ,
		IssuedAt: issuedAt,
		Series:   authority.Serie,
		Number:   emission.Number,
	})

	doc := p.assembler.Assemble(document.Input{
		Order:     order,
		Issuer:    issuer,
		Authority: authority,
		TechResp:  techResp,
		Emission:  emission,
		Key:       key,
		IssuedAt:  issuedAt,
	})

	canonical, err := document.SerializeBody(doc)
	if err != nil {
		return nil, model.NewBuildError("serialize", "infNFe", "failed to serialize document body", err)
	}

	sigData, err := p.signer.Sign(ctx, canonical)
	if err != nil {
		return nil, err
	}
	document.AttachSignature(doc, key.DocumentID(), sigData)

	auth, err := p.qr.Authenticate(ctx, key.String(), authority.CSC, authority.CSCID, authority.Ambiente)
	if err != nil {
		return nil, err
	}
	document.AttachSupplement(doc, auth)

	xml, err := document.Serialize(doc)
	if err != nil {
		return nil, model.NewBuildError("serialize", "NFe", "failed to serialize final document", err)
	}

	return &Result{
		XML:        xml,
		AccessKey:  key.String(),
		DocumentID: key.DocumentID(),
		QRCode:     auth.QRCodeURL,
		ConsultURL: auth.ConsultURL,
	}, nil
}
