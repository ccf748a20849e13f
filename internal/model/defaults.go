package model

// Defaults applied when a configuration field arrives empty. The engine
// never fails an emission over missing configuration; each field below
// is the single documented substitute, kept in one table so the whole
// default surface is auditable in one place.
const (
	DefaultUF           = "TO"
	DefaultCNPJ         = "00000000000191"
	DefaultRazaoSocial  = "EMITENTE NAO CONFIGURADO"
	DefaultNomeFantasia = "EMITENTE NAO CONFIGURADO"
	DefaultLogradouro   = "RUA SEM NOME"
	DefaultNumero       = "S/N"
	DefaultBairro       = "CENTRO"
	DefaultCityCode     = "1721000" // Palmas/TO
	DefaultCityName     = "PALMAS"
	DefaultCEP          = "77000000"
	DefaultIE           = "ISENTO"
	DefaultCRT          = "1" // Simples Nacional

	DefaultSerie = 1
	DefaultCSCID = "000001"

	DefaultTechCNPJ    = "00000000000191"
	DefaultTechContact = "SUPORTE"
	DefaultTechEmail   = "suporte@rezonia.dev"
	DefaultTechPhone   = "6300000000"
)

// orDefault is the single resolve-with-default primitive behind every
// optional field.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Resolved returns a copy of the issuer config with every empty field
// replaced by its documented default.
func (c IssuerConfig) Resolved() IssuerConfig {
	return IssuerConfig{
		UF:           orDefault(c.UF, DefaultUF),
		CNPJ:         orDefault(c.CNPJ, DefaultCNPJ),
		RazaoSocial:  orDefault(c.RazaoSocial, DefaultRazaoSocial),
		NomeFantasia: orDefault(c.NomeFantasia, DefaultNomeFantasia),
		Logradouro:   orDefault(c.Logradouro, DefaultLogradouro),
		Numero:       orDefault(c.Numero, DefaultNumero),
		Bairro:       orDefault(c.Bairro, DefaultBairro),
		CityCode:     orDefault(c.CityCode, DefaultCityCode),
		CityName:     orDefault(c.CityName, DefaultCityName),
		CEP:          orDefault(c.CEP, DefaultCEP),
		IE:           orDefault(c.IE, DefaultIE),
		CRT:          orDefault(c.CRT, DefaultCRT),
	}
}

// Resolved returns a copy of the authority config with defaults
// applied. An unrecognized environment resolves to homologation.
func (c TaxAuthorityConfig) Resolved() TaxAuthorityConfig {
	out := c
	if out.Ambiente != EnvironmentProduction {
		out.Ambiente = EnvironmentHomologation
	}
	if out.Serie <= 0 {
		out.Serie = DefaultSerie
	}
	out.CSCID = orDefault(out.CSCID, DefaultCSCID)
	return out
}

// Resolved returns a copy of the technical-responsible config with
// defaults applied.
func (c TechResponsibleConfig) Resolved() TechResponsibleConfig {
	return TechResponsibleConfig{
		CNPJ:    orDefault(c.CNPJ, DefaultTechCNPJ),
		Contact: orDefault(c.Contact, DefaultTechContact),
		Email:   orDefault(c.Email, DefaultTechEmail),
		Phone:   orDefault(c.Phone, DefaultTechPhone),
	}
}
