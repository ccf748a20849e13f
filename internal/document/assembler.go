// Package document assembles the ordered XML body of an NFC-e. The
// section order (ide, emit, det, total, transp, pag, infRespTec, then
// Signature and the supplementary QR block) is part of the external
// contract: the target format is position-sensitive and must never be
// reordered.
package document

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfce-engine/internal/accesskey"
	"github.com/rezonia/nfce-engine/internal/format"
	"github.com/rezonia/nfce-engine/internal/model"
	"github.com/rezonia/nfce-engine/internal/qrauth"
	"github.com/rezonia/nfce-engine/internal/signature"
	"github.com/rezonia/nfce-engine/internal/tax"
)

// Fixed header/section constants of the NFC-e layout.
const (
	Namespace     = "http://www.portalfiscal.inf.br/nfe"
	LayoutVersion = "4.00"

	natOpRetail      = "VENDA AO CONSUMIDOR FINAL"
	tpNFOutgoing     = "1"
	idDestInternal   = "1"
	tpImpDANFENFCe   = "4"
	finNFeNormal     = "1"
	indFinalConsumer = "1"
	indPresInPerson  = "1"
	procEmiOwnApp    = "0"

	modFreteNone = "9"  // no freight
	tPagCash     = "01" // single fixed payment method

	countryCode = "1058"
	countryName = "BRASIL"

	timestampLayout = "2006-01-02T15:04:05-07:00"
)

// Input is everything the assembler needs for one document. Configs
// are expected to be already resolved against the defaults table.
type Input struct {
	Order     model.Order
	Issuer    model.IssuerConfig
	Authority model.TaxAuthorityConfig
	TechResp  model.TechResponsibleConfig
	Emission  model.EmissionContext
	Key       accesskey.Key
	IssuedAt  time.Time
}

// Assembler builds the infNFe body from an order and its configs.
type Assembler struct {
	encoder *tax.Encoder
	verProc string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTaxEncoder replaces the default line-item encoder.
func WithTaxEncoder(e *tax.Encoder) Option {
	return func(a *Assembler) { a.encoder = e }
}

// WithVersionTag sets the verProc application identifier.
func WithVersionTag(v string) Option {
	return func(a *Assembler) { a.verProc = v }
}

// NewAssembler creates an assembler with the default tax encoder.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		encoder: tax.NewEncoder(nil),
		verProc: "nfce-engine 1.0.0",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the NFe document with its infNFe body. Signature and
// supplementary sections are attached afterwards by the pipeline.
func (a *Assembler) Assemble(in Input) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	nfe := doc.CreateElement("NFe")
	nfe.CreateAttr("xmlns", Namespace)

	infNFe := nfe.CreateElement("infNFe")
	infNFe.CreateAttr("Id", in.Key.DocumentID())
	infNFe.CreateAttr("versao", LayoutVersion)

	segments := in.Key.Segments()
	lines := a.encoder.Encode(in.Order.Items)

	a.buildIdentification(infNFe, in, segments)
	a.buildIssuer(infNFe, in.Issuer)
	a.buildItems(infNFe, lines)
	a.buildTotals(infNFe, in.Order, lines)
	a.buildTransport(infNFe)
	a.buildPayment(infNFe, in.Order)
	a.buildTechResponsible(infNFe, in.TechResp)

	return doc
}

func (a *Assembler) buildIdentification(parent *etree.Element, in Input, seg accesskey.Segments) {
	ide := parent.CreateElement("ide")
	setText(ide, "cUF", seg.UF)
	setText(ide, "cNF", seg.RandomCode)
	setText(ide, "natOp", natOpRetail)
	setText(ide, "mod", seg.Model)
	setText(ide, "serie", strconv.Itoa(in.Authority.Serie))
	setText(ide, "nNF", strconv.FormatInt(in.Emission.Number, 10))
	setText(ide, "dhEmi", in.IssuedAt.Format(timestampLayout))
	setText(ide, "tpNF", tpNFOutgoing)
	setText(ide, "idDest", idDestInternal)
	setText(ide, "cMunFG", in.Issuer.CityCode)
	setText(ide, "tpImp", tpImpDANFENFCe)
	setText(ide, "tpEmis", seg.EmissionType)
	setText(ide, "cDV", seg.CheckDigit)
	setText(ide, "tpAmb", in.Authority.Ambiente.Digit())
	setText(ide, "finNFe", finNFeNormal)
	setText(ide, "indFinal", indFinalConsumer)
	setText(ide, "indPres", indPresInPerson)
	setText(ide, "procEmi", procEmiOwnApp)
	setText(ide, "verProc", a.verProc)
}

func (a *Assembler) buildIssuer(parent *etree.Element, issuer model.IssuerConfig) {
	emit := parent.CreateElement("emit")
	setText(emit, "CNPJ", format.OnlyDigits(issuer.CNPJ))
	setText(emit, "xNome", issuer.RazaoSocial)
	setText(emit, "xFant", issuer.NomeFantasia)

	ender := emit.CreateElement("enderEmit")
	setText(ender, "xLgr", issuer.Logradouro)
	setText(ender, "nro", issuer.Numero)
	setText(ender, "xBairro", issuer.Bairro)
	setText(ender, "cMun", issuer.CityCode)
	setText(ender, "xMun", issuer.CityName)
	setText(ender, "UF", issuer.UF)
	setText(ender, "CEP", format.OnlyDigits(issuer.CEP))
	setText(ender, "cPais", countryCode)
	setText(ender, "xPais", countryName)

	setText(emit, "IE", issuer.IE)
	setText(emit, "CRT", issuer.CRT)
}

func (a *Assembler) buildItems(parent *etree.Element, lines []tax.Line) {
	for _, line := range lines {
		det := parent.CreateElement("det")
		det.CreateAttr("nItem", strconv.Itoa(line.Index))

		prod := det.CreateElement("prod")
		setText(prod, "cProd", strconv.Itoa(line.Index))
		setText(prod, "cEAN", tax.EANNone)
		setText(prod, "xProd", line.Item.Name)
		setText(prod, "NCM", tax.NCMUnclassified)
		setText(prod, "CFOP", tax.CFOPRetailSale)
		setText(prod, "uCom", tax.UnitCommercial)
		setText(prod, "qCom", format.Quantity(line.Item.Quantity))
		setText(prod, "vUnCom", format.UnitPrice(line.Item.UnitPrice))
		setText(prod, "vProd", format.Amount(line.LineTotal))
		setText(prod, "cEANTrib", tax.EANNone)
		setText(prod, "uTrib", tax.UnitCommercial)
		setText(prod, "qTrib", format.Quantity(line.Item.Quantity))
		setText(prod, "vUnTrib", format.UnitPrice(line.Item.UnitPrice))
		setText(prod, "indTot", "1")

		imposto := det.CreateElement("imposto")
		setText(imposto, "vTotTrib", format.Amount(line.ApproxTax))
		icms := imposto.CreateElement("ICMS")
		sn := icms.CreateElement("ICMSSN102")
		setText(sn, "orig", tax.OriginNational)
		setText(sn, "CSOSN", tax.CSOSNSimplesNoCredit)
	}
}

// buildTotals emits vProd, vNF and the aggregate approximate tax; the
// remaining legally required totals are fixed zero placeholders.
func (a *Assembler) buildTotals(parent *etree.Element, order model.Order, lines []tax.Line) {
	productTotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, line := range lines {
		productTotal = productTotal.Add(line.LineTotal)
		taxTotal = taxTotal.Add(line.ApproxTax)
	}

	zero := format.Amount(decimal.Zero)
	total := parent.CreateElement("total")
	icmsTot := total.CreateElement("ICMSTot")
	setText(icmsTot, "vBC", zero)
	setText(icmsTot, "vICMS", zero)
	setText(icmsTot, "vICMSDeson", zero)
	setText(icmsTot, "vFCP", zero)
	setText(icmsTot, "vBCST", zero)
	setText(icmsTot, "vST", zero)
	setText(icmsTot, "vFCPST", zero)
	setText(icmsTot, "vFCPSTRet", zero)
	setText(icmsTot, "vProd", format.Amount(productTotal))
	setText(icmsTot, "vFrete", zero)
	setText(icmsTot, "vSeg", zero)
	setText(icmsTot, "vDesc", zero)
	setText(icmsTot, "vII", zero)
	setText(icmsTot, "vIPI", zero)
	setText(icmsTot, "vIPIDevol", zero)
	setText(icmsTot, "vPIS", zero)
	setText(icmsTot, "vCOFINS", zero)
	setText(icmsTot, "vOutro", zero)
	setText(icmsTot, "vNF", format.Amount(order.TotalValue))
	setText(icmsTot, "vTotTrib", format.Amount(taxTotal))
}

func (a *Assembler) buildTransport(parent *etree.Element) {
	transp := parent.CreateElement("transp")
	setText(transp, "modFrete", modFreteNone)
}

func (a *Assembler) buildPayment(parent *etree.Element, order model.Order) {
	pag := parent.CreateElement("pag")
	detPag := pag.CreateElement("detPag")
	setText(detPag, "tPag", tPagCash)
	setText(detPag, "vPag", format.Amount(order.TotalValue))
}

func (a *Assembler) buildTechResponsible(parent *etree.Element, tr model.TechResponsibleConfig) {
	resp := parent.CreateElement("infRespTec")
	setText(resp, "CNPJ", format.OnlyDigits(tr.CNPJ))
	setText(resp, "xContato", tr.Contact)
	setText(resp, "email", tr.Email)
	setText(resp, "fone", format.OnlyDigits(tr.Phone))
}

// AttachSignature appends the signature envelope after infNFe.
func AttachSignature(doc *etree.Document, documentID string, data *signature.Data) {
	doc.Root().AddChild(signature.Envelope(documentID, data))
}

// AttachSupplement appends the infNFeSupl QR block after the
// signature. Last section of the document.
func AttachSupplement(doc *etree.Document, auth *qrauth.Authentication) {
	supl := doc.Root().CreateElement("infNFeSupl")
	qr := supl.CreateElement("qrCode")
	qr.SetCData(auth.QRCodeURL)
	setText(supl, "urlChave", auth.ConsultURL)
}

// Serialize writes the document without extra indentation, the wire
// form expected by the authority.
func Serialize(doc *etree.Document) (string, error) {
	doc.Indent(etree.NoIndent)
	return doc.WriteToString()
}

// SerializeBody writes only the NFe element with its infNFe body, the
// canonical input handed to the Signer.
func SerializeBody(doc *etree.Document) ([]byte, error) {
	body := etree.NewDocument()
	body.SetRoot(doc.Root().Copy())
	body.Indent(etree.NoIndent)
	return body.WriteToBytes()
}

func setText(parent *etree.Element, tag, text string) {
	parent.CreateElement(tag).SetText(text)
}
