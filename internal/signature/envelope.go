package signature

import (
	"github.com/beevik/etree"
)

// XMLDSig algorithm identifiers used by the envelope.
const (
	XMLDSigNamespace       = "http://www.w3.org/2000/09/xmldsig#"
	CanonicalizationMethod = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	SignatureMethodRSASHA1 = "http://www.w3.org/2000/09/xmldsig#rsa-sha1"
	DigestMethodSHA1       = "http://www.w3.org/2000/09/xmldsig#sha1"
	TransformEnveloped     = "http://www.w3.org/2000/09/xmldsig#enveloped-signature"
)

// Envelope builds the Signature element referencing documentID and
// carrying the signer's output. Element order inside the envelope is
// fixed by the XMLDSig schema and must not change.
func Envelope(documentID string, data *Data) *etree.Element {
	sig := etree.NewElement("Signature")
	sig.CreateAttr("xmlns", XMLDSigNamespace)

	signedInfo := sig.CreateElement("SignedInfo")
	signedInfo.CreateElement("CanonicalizationMethod").CreateAttr("Algorithm", CanonicalizationMethod)
	signedInfo.CreateElement("SignatureMethod").CreateAttr("Algorithm", SignatureMethodRSASHA1)

	ref := signedInfo.CreateElement("Reference")
	ref.CreateAttr("URI", "#"+documentID)
	transforms := ref.CreateElement("Transforms")
	transforms.CreateElement("Transform").CreateAttr("Algorithm", TransformEnveloped)
	transforms.CreateElement("Transform").CreateAttr("Algorithm", CanonicalizationMethod)
	ref.CreateElement("DigestMethod").CreateAttr("Algorithm", DigestMethodSHA1)
	ref.CreateElement("DigestValue").SetText(data.DigestValue)

	sig.CreateElement("SignatureValue").SetText(data.SignatureValue)

	keyInfo := sig.CreateElement("KeyInfo")
	x509Data := keyInfo.CreateElement("X509Data")
	x509Data.CreateElement("X509Certificate").SetText(data.Certificate)

	return sig
}
