package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/nfce-engine/internal/model"
)

func TestLineItem_LineTotal(t *testing.T) {
	item := model.LineItem{
		Name:      "Product A",
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.RequireFromString("10.00"),
	}

	// 2 * 10.00 = 20.00
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("20.00")))
}

func TestLineItem_LineTotalRounds(t *testing.T) {
	item := model.LineItem{
		Quantity:  decimal.RequireFromString("0.333"),
		UnitPrice: decimal.RequireFromString("9.99"),
	}

	// 0.333 * 9.99 = 3.32667 -> 3.33
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("3.33")),
		"got %s", item.LineTotal().String())
}

func TestEnvironment_Digit(t *testing.T) {
	assert.Equal(t, "1", model.EnvironmentProduction.Digit())
	assert.Equal(t, "2", model.EnvironmentHomologation.Digit())

	// Malformed environment is treated as homologation
	assert.Equal(t, "2", model.Environment("staging").Digit())
	assert.Equal(t, "2", model.Environment("").Digit())
}

func TestIssuerConfig_Resolved_Empty(t *testing.T) {
	resolved := model.IssuerConfig{}.Resolved()

	assert.Equal(t, model.DefaultUF, resolved.UF)
	assert.Equal(t, model.DefaultCNPJ, resolved.CNPJ)
	assert.Equal(t, model.DefaultRazaoSocial, resolved.RazaoSocial)
	assert.Equal(t, model.DefaultCityCode, resolved.CityCode)
	assert.Equal(t, model.DefaultIE, resolved.IE)
	assert.Equal(t, model.DefaultCRT, resolved.CRT)
}

func TestIssuerConfig_Resolved_Partial(t *testing.T) {
	resolved := model.IssuerConfig{
		UF:          "SP",
		RazaoSocial: "ACME LTDA",
	}.Resolved()

	// Provided fields survive
	assert.Equal(t, "SP", resolved.UF)
	assert.Equal(t, "ACME LTDA", resolved.RazaoSocial)

	// Missing fields filled in
	assert.Equal(t, model.DefaultCNPJ, resolved.CNPJ)
	assert.Equal(t, model.DefaultBairro, resolved.Bairro)
}

func TestTaxAuthorityConfig_Resolved(t *testing.T) {
	resolved := model.TaxAuthorityConfig{}.Resolved()
	assert.Equal(t, model.EnvironmentHomologation, resolved.Ambiente)
	assert.Equal(t, model.DefaultSerie, resolved.Serie)
	assert.Equal(t, model.DefaultCSCID, resolved.CSCID)

	prod := model.TaxAuthorityConfig{Ambiente: model.EnvironmentProduction, Serie: 5, CSCID: "7"}.Resolved()
	assert.Equal(t, model.EnvironmentProduction, prod.Ambiente)
	assert.Equal(t, 5, prod.Serie)
	assert.Equal(t, "7", prod.CSCID)

	// Unknown environment resolves to homologation
	odd := model.TaxAuthorityConfig{Ambiente: "live"}.Resolved()
	assert.Equal(t, model.EnvironmentHomologation, odd.Ambiente)
}

func TestTechResponsibleConfig_Resolved(t *testing.T) {
	resolved := model.TechResponsibleConfig{}.Resolved()
	assert.Equal(t, model.DefaultTechCNPJ, resolved.CNPJ)
	assert.Equal(t, model.DefaultTechContact, resolved.Contact)
	assert.Equal(t, model.DefaultTechEmail, resolved.Email)
	assert.Equal(t, model.DefaultTechPhone, resolved.Phone)
}

func TestBuildError(t *testing.T) {
	cause := assert.AnError
	err := model.NewBuildError("serialize", "infNFe", "write failed", cause)

	assert.Contains(t, err.Error(), "serialize")
	assert.Contains(t, err.Error(), "infNFe")
	assert.ErrorIs(t, err, cause)
}

func TestSignError(t *testing.T) {
	err := model.NewSignError("no certificate", nil)
	assert.Contains(t, err.Error(), "no certificate")

	wrapped := model.NewSignError("rsa failure", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
