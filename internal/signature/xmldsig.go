package signature

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"

	"github.com/rezonia/nfce-engine/internal/model"
)

// XMLDSigSigner signs the canonical document with a real RSA key and
// certificate: C14N via goxmldsig, SHA-1 digest, RSA-SHA1 signature.
// This is the integration point that replaces PlaceholderSigner once
// the issuer's certificate is available.
type XMLDSigSigner struct {
	key           *rsa.PrivateKey
	cert          *x509.Certificate
	canonicalizer dsig.Canonicalizer
}

// NewXMLDSigSigner creates a signer from the issuer's key pair.
func NewXMLDSigSigner(key *rsa.PrivateKey, cert *x509.Certificate) (*XMLDSigSigner, error) {
	if key == nil || cert == nil {
		return nil, model.NewSignError("private key and certificate are required", nil)
	}
	return &XMLDSigSigner{
		key:           key,
		cert:          cert,
		canonicalizer: dsig.MakeC14N10RecCanonicalizer(),
	}, nil
}

// Sign canonicalizes the document, digests it and signs the digest.
func (s *XMLDSigSigner) Sign(ctx context.Context, canonical []byte) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(canonical); err != nil {
		return nil, model.NewSignError("failed to parse canonical document", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, model.NewSignError("canonical document has no root element", nil)
	}

	c14n, err := s.canonicalizer.Canonicalize(root)
	if err != nil {
		return nil, model.NewSignError("canonicalization failed", err)
	}

	digest := sha1.Sum(c14n)
	sigValue, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA1, digest[:])
	if err != nil {
		return nil, model.NewSignError(fmt.Sprintf("RSA signing failed for %s", s.cert.Subject.CommonName), err)
	}

	return &Data{
		DigestValue:    base64.StdEncoding.EncodeToString(digest[:]),
		SignatureValue: base64.StdEncoding.EncodeToString(sigValue),
		Certificate:    base64.StdEncoding.EncodeToString(s.cert.Raw),
	}, nil
}
