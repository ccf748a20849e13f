// Package signature builds the XMLDSig envelope appended to the
// assembled document. Signing itself is a pluggable capability: the
// engine's job is to invoke a Signer over the canonical document and
// splice the result into the envelope. The certificate-holding
// collaborator that performs real canonicalization and private-key
// signing lives behind the Signer interface.
package signature

import "context"

// Data is the output of one signing operation.
type Data struct {
	// DigestValue is the base64 digest of the referenced element.
	DigestValue string
	// SignatureValue is the base64 signature over the signed info.
	SignatureValue string
	// Certificate is the base64 DER certificate of the signer.
	Certificate string
}

// Signer produces the signature material for a canonical document.
// Implementations must not retry internally; failures propagate
// unchanged to the emission caller.
type Signer interface {
	Sign(ctx context.Context, canonical []byte) (*Data, error)
}
