package server

import (
	"github.com/rezonia/nfce-engine/internal/model"
)

// EmitRequest is the request body for the emit endpoint.
type EmitRequest struct {
	Order     model.Order                 `json:"order" binding:"required"`
	Issuer    model.IssuerConfig          `json:"issuer"`
	Authority model.TaxAuthorityConfig    `json:"authority"`
	TechResp  model.TechResponsibleConfig `json:"tech_resp"`
	Emission  model.EmissionContext       `json:"emission" binding:"required"`
}

// EmitResponse is the response for the emit endpoint.
type EmitResponse struct {
	XML        string `json:"xmlString"`
	AccessKey  string `json:"chaveAcesso"`
	DocumentID string `json:"document_id"`
	QRCode     string `json:"qr_code"`
	ConsultURL string `json:"consult_url"`
}

// VerifyKeyRequest is the request body for access-key verification.
type VerifyKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// VerifyKeyResponse is the response for access-key verification.
type VerifyKeyResponse struct {
	Valid    bool         `json:"valid"`
	Segments *KeySegments `json:"segments,omitempty"`
}

// KeySegments is the decomposed key for API responses.
type KeySegments struct {
	UF           string `json:"uf"`
	YearMonth    string `json:"year_month"`
	CNPJ         string `json:"cnpj"`
	Model        string `json:"model"`
	Series       string `json:"series"`
	Number       string `json:"number"`
	EmissionType string `json:"emission_type"`
	RandomCode   string `json:"random_code"`
	CheckDigit   string `json:"check_digit"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
