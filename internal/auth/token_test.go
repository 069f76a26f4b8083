package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityToken_CreateVerify(t *testing.T) {
	ct := NewCapabilityToken([]byte("0123456789abcdef"), time.Hour)

	token, err := ct.Create()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := ct.Verify(token)
	require.NoError(t, err)
	assert.NotEmpty(t, payload.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), payload.ExpiresAt, time.Minute)
}

func TestCapabilityToken_Expired(t *testing.T) {
	ct := NewCapabilityToken([]byte("0123456789abcdef"), -time.Minute)

	token, err := ct.Create()
	require.NoError(t, err)

	_, err = ct.Verify(token)
	assert.Error(t, err)
}

func TestCapabilityToken_WrongKey(t *testing.T) {
	issuer := NewCapabilityToken([]byte("issuer-key"), time.Hour)
	verifier := NewCapabilityToken([]byte("verifier-key"), time.Hour)

	token, err := issuer.Create()
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestCapabilityToken_Garbage(t *testing.T) {
	ct := NewCapabilityToken([]byte("0123456789abcdef"), time.Hour)

	_, err := ct.Verify("not.a.token")
	assert.Error(t, err)
}
