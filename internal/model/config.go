package model

// Environment selects the tax-authority behavior set.
type Environment string

// Tax-authority environments.
const (
	EnvironmentProduction   Environment = "producao"
	EnvironmentHomologation Environment = "homologacao"
)

// Digit returns the single-digit wire form of the environment: "1" for
// production, "2" for homologation. Anything unrecognized is treated as
// homologation so a misconfigured flag can never emit against the live
// endpoint.
func (e Environment) Digit() string {
	if e == EnvironmentProduction {
		return "1"
	}
	return "2"
}

// IssuerConfig identifies the company emitting the document. Every
// field is optional; missing fields resolve to the defaults table in
// defaults.go.
type IssuerConfig struct {
	UF           string `json:"uf"`
	CNPJ         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	Logradouro   string `json:"logradouro"`
	Numero       string `json:"numero"`
	Bairro       string `json:"bairro"`
	CityCode     string `json:"city_code"`
	CityName     string `json:"city_name"`
	CEP          string `json:"cep"`
	IE           string `json:"ie"`
	CRT          string `json:"crt"`
}

// TaxAuthorityConfig carries the emission parameters agreed with the
// tax authority: environment, document series and the taxpayer
// security code (CSC) used only for the QR authentication hash.
type TaxAuthorityConfig struct {
	Ambiente Environment `json:"ambiente"`
	Serie    int         `json:"serie"`
	CSC      string      `json:"csc"`
	CSCID    string      `json:"csc_id"`
}

// TechResponsibleConfig identifies the software vendor responsible for
// document generation. Informational block; same missing-field
// tolerance as IssuerConfig.
type TechResponsibleConfig struct {
	CNPJ    string `json:"tech_resp_cnpj"`
	Contact string `json:"tech_resp_contact"`
	Email   string `json:"tech_resp_email"`
	Phone   string `json:"tech_resp_phone"`
}

// EmissionContext carries the caller-assigned sequential document
// number. The engine does not allocate or persist sequence numbers.
type EmissionContext struct {
	Number int64 `json:"nNF"`
}
