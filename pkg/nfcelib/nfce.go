// Package nfcelib provides a public API for emitting NFC-e fiscal
// documents.
//
// This package exposes the core types for assembling a signed NFC-e
// XML document with its 44-digit access key and QR authentication
// payload from an order and issuer/authority configuration.
//
// Example usage:
//
//	emitter := nfcelib.NewEmitter()
//	result, err := emitter.Emit(ctx, order, issuer, authority, techResp, emission)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.AccessKey)
package nfcelib

import "github.com/rezonia/nfce-engine/internal/model"

// Re-export core types for public API
type (
	Order                 = model.Order
	LineItem              = model.LineItem
	IssuerConfig          = model.IssuerConfig
	TaxAuthorityConfig    = model.TaxAuthorityConfig
	TechResponsibleConfig = model.TechResponsibleConfig
	EmissionContext       = model.EmissionContext
	Environment           = model.Environment
)

// Re-export environments
const (
	EnvironmentProduction   = model.EnvironmentProduction
	EnvironmentHomologation = model.EnvironmentHomologation
)

// Re-export error types
type (
	BuildError = model.BuildError
	SignError  = model.SignError
)
