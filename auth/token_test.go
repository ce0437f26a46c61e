package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("super-secret", time.Hour)

	token, err := tokens.Issue(42, "alice")
	require.NoError(t, err)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenService("super-secret", -time.Second)

	token, err := tokens.Issue(42, "alice")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	token, err := issuer.Issue(42, "alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	tokens := NewTokenService("super-secret", time.Hour)

	_, err := tokens.Verify("not.a.jwt")
	assert.Error(t, err)

	_, err = tokens.Verify("")
	assert.Error(t, err)
}
