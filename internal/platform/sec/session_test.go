// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/platform/sec"
)

const testSecret = "unit-test-secret-0123456789"

/*
TestSessionSigner_IssueAndVerify round-trips a token through the signer.
*/
func TestSessionSigner_IssueAndVerify(t *testing.T) {
	signer, err := sec.NewSessionSigner(testSecret, "hearthdeck.app", time.Hour)
	require.NoError(t, err)

	token, err := signer.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "hearthdeck.app", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

/*
TestSessionSigner_RejectsShortSecret refuses secrets under 16 bytes.
*/
func TestSessionSigner_RejectsShortSecret(t *testing.T) {
	_, err := sec.NewSessionSigner("too-short", "hearthdeck.app", time.Hour)
	assert.Error(t, err)
}

/*
TestSessionSigner_RejectsWrongSecret fails verification when the token was
signed under a different secret.
*/
func TestSessionSigner_RejectsWrongSecret(t *testing.T) {
	signerA, err := sec.NewSessionSigner(testSecret, "hearthdeck.app", time.Hour)
	require.NoError(t, err)
	signerB, err := sec.NewSessionSigner("another-secret-0123456789", "hearthdeck.app", time.Hour)
	require.NoError(t, err)

	token, err := signerA.Issue()
	require.NoError(t, err)

	_, err = signerB.Verify(token)
	assert.Error(t, err)
}

/*
TestSessionSigner_RejectsWrongIssuer fails verification across issuers even
with a shared secret.
*/
func TestSessionSigner_RejectsWrongIssuer(t *testing.T) {
	signerA, err := sec.NewSessionSigner(testSecret, "hearthdeck.app", time.Hour)
	require.NoError(t, err)
	signerB, err := sec.NewSessionSigner(testSecret, "other.app", time.Hour)
	require.NoError(t, err)

	token, err := signerA.Issue()
	require.NoError(t, err)

	_, err = signerB.Verify(token)
	assert.Error(t, err)
}

/*
TestSessionSigner_RejectsExpiredToken fails verification once the TTL has
elapsed.
*/
func TestSessionSigner_RejectsExpiredToken(t *testing.T) {
	signer, err := sec.NewSessionSigner(testSecret, "hearthdeck.app", -time.Minute)
	require.NoError(t, err)

	token, err := signer.Issue()
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

/*
TestHashPasscode_CheckRoundTrip verifies bcrypt hashing and comparison.
*/
func TestHashPasscode_CheckRoundTrip(t *testing.T) {
	hash, err := sec.HashPasscode("mellon")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasscode("mellon", hash))
	assert.False(t, sec.CheckPasscode("friend", hash))
	assert.False(t, sec.CheckPasscode("mellon", "not-a-bcrypt-hash"))
}
