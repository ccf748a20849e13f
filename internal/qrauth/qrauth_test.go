package qrauth_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nfce-engine/internal/model"
	"github.com/rezonia/nfce-engine/internal/qrauth"
)

var upperHex = regexp.MustCompile(`^[0-9A-F]{40}$`)

func TestAuthenticate_KnownHash(t *testing.T) {
	auth := qrauth.NewAuthenticator()

	// SHA1("abc") = a9993e364706816aba3e25717850c26c9cd0d89d
	result, err := auth.Authenticate(context.Background(), "ab", "c", "000001", model.EnvironmentHomologation)
	require.NoError(t, err)

	assert.Equal(t, "A9993E364706816ABA3E25717850C26C9CD0D89D", result.Hash)
}

func TestAuthenticate_Deterministic(t *testing.T) {
	auth := qrauth.NewAuthenticator()
	key := "17240800000000000191650010000000421123456780"

	a, err := auth.Authenticate(context.Background(), key, "SECRET", "000001", model.EnvironmentProduction)
	require.NoError(t, err)
	b, err := auth.Authenticate(context.Background(), key, "SECRET", "000001", model.EnvironmentProduction)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Payload, b.Payload)
	assert.True(t, upperHex.MatchString(a.Hash), "hash must be uppercase hex: %s", a.Hash)
}

func TestAuthenticate_PayloadShape(t *testing.T) {
	auth := qrauth.NewAuthenticator()
	key := "17240800000000000191650010000000421123456780"

	result, err := auth.Authenticate(context.Background(), key, "SECRET", "000042", model.EnvironmentProduction)
	require.NoError(t, err)

	parts := strings.Split(result.Payload, "|")
	require.Len(t, parts, 5)
	assert.Equal(t, key, parts[0])
	assert.Equal(t, qrauth.QRVersion, parts[1])
	assert.Equal(t, "1", parts[2], "production environment digit")
	assert.Equal(t, "000042", parts[3])
	assert.Equal(t, result.Hash, parts[4])

	assert.True(t, strings.HasSuffix(result.QRCodeURL, "?p="+result.Payload))
}

func TestAuthenticate_EnvironmentEndpoints(t *testing.T) {
	auth := qrauth.NewAuthenticator()
	key := "17240800000000000191650010000000421123456780"

	prod, err := auth.Authenticate(context.Background(), key, "S", "1", model.EnvironmentProduction)
	require.NoError(t, err)
	homolog, err := auth.Authenticate(context.Background(), key, "S", "1", model.EnvironmentHomologation)
	require.NoError(t, err)

	assert.NotEqual(t, prod.ConsultURL, homolog.ConsultURL)
	assert.NotContains(t, prod.QRCodeURL, "homologacao")
	assert.Contains(t, homolog.QRCodeURL, "homologacao")

	// Environment digit differs too
	assert.Contains(t, prod.Payload, "|1|")
	assert.Contains(t, homolog.Payload, "|2|")
}

func TestAuthenticate_UnknownEnvironmentFallsBack(t *testing.T) {
	auth := qrauth.NewAuthenticator()

	result, err := auth.Authenticate(context.Background(), "key", "csc", "1", model.Environment("weird"))
	require.NoError(t, err)
	assert.Contains(t, result.QRCodeURL, "homologacao")
}

func TestAuthenticate_CanceledContext(t *testing.T) {
	auth := qrauth.NewAuthenticator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := auth.Authenticate(ctx, "key", "csc", "1", model.EnvironmentProduction)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithEndpoints(t *testing.T) {
	auth := qrauth.NewAuthenticator(qrauth.WithEndpoints(model.EnvironmentProduction, qrauth.Endpoints{
		QRCode:       "https://example.test/qr",
		Consultation: "https://example.test/consult",
	}))

	result, err := auth.Authenticate(context.Background(), "key", "csc", "1", model.EnvironmentProduction)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.QRCodeURL, "https://example.test/qr?p="))
	assert.Equal(t, "https://example.test/consult", result.ConsultURL)
}
