// Package qrauth derives the point-of-sale QR authentication payload:
// an uppercase-hex SHA-1 over access key + taxpayer security code,
// wrapped in the pipe-delimited consultation string, plus the plain
// consultation URL for the chosen environment.
package qrauth

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/rezonia/nfce-engine/internal/model"
)

// QRVersion is the fixed version field of the payload.
const QRVersion = "2"

// Endpoints are the fixed consultation URLs of one environment.
type Endpoints struct {
	QRCode       string
	Consultation string
}

var defaultEndpoints = map[model.Environment]Endpoints{
	model.EnvironmentProduction: {
		QRCode:       "http://apps.sefaz.to.gov.br/portal-nfce/qrcodeNFCe",
		Consultation: "http://apps.sefaz.to.gov.br/portal-nfce/consultarNFCe",
	},
	model.EnvironmentHomologation: {
		QRCode:       "http://apps.sefaz.to.gov.br/portal-nfce-homologacao/qrcodeNFCe",
		Consultation: "http://apps.sefaz.to.gov.br/portal-nfce-homologacao/consultarNFCe",
	},
}

// Authentication is the QR material embedded in the supplementary
// section of the final document.
type Authentication struct {
	Hash       string // uppercase hex SHA-1
	Payload    string // key|version|env|cscID|hash
	QRCodeURL  string // endpoint + "?p=" + payload
	ConsultURL string // plain consultation URL
}

// Authenticator builds QR authentication material. The endpoint table
// is bundled at construction and never mutated.
type Authenticator struct {
	endpoints map[model.Environment]Endpoints
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithEndpoints overrides the endpoint table for one environment.
func WithEndpoints(env model.Environment, e Endpoints) Option {
	return func(a *Authenticator) { a.endpoints[env] = e }
}

// NewAuthenticator creates an authenticator with the fixed endpoint
// table.
func NewAuthenticator(opts ...Option) *Authenticator {
	a := &Authenticator{endpoints: make(map[model.Environment]Endpoints, len(defaultEndpoints))}
	for env, e := range defaultEndpoints {
		a.endpoints[env] = e
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate derives the QR payload for one emitted key. The hash is
// deterministic for identical (key, CSC) pairs. The context is honored
// before the digest is computed; there are no retries here.
func (a *Authenticator) Authenticate(ctx context.Context, key, csc, cscID string, env model.Environment) (*Authentication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := sha1.Sum([]byte(key + csc))
	hash := strings.ToUpper(hex.EncodeToString(sum[:]))

	payload := strings.Join([]string{key, QRVersion, env.Digit(), cscID, hash}, "|")
	endpoints := a.endpointsFor(env)

	return &Authentication{
		Hash:       hash,
		Payload:    payload,
		QRCodeURL:  endpoints.QRCode + "?p=" + payload,
		ConsultURL: endpoints.Consultation,
	}, nil
}

func (a *Authenticator) endpointsFor(env model.Environment) Endpoints {
	if env == model.EnvironmentProduction {
		return a.endpoints[model.EnvironmentProduction]
	}
	// anything but production consults the homologation endpoints
	return a.endpoints[model.EnvironmentHomologation]
}
