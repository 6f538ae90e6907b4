// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package auth_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/auth"
	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/constants"
	"github.com/fellhollow/hearthdeck/internal/platform/sec"
)

func newAuthService(t *testing.T, passcode string) *auth.Service {
	t.Helper()

	hash, err := sec.HashPasscode(passcode)
	require.NoError(t, err)

	signer, err := sec.NewSessionSigner("test-secret-0123456789abcdef", constants.SessionIssuer, time.Hour)
	require.NoError(t, err)

	return auth.NewService(signer, hash, slog.Default())
}

/*
TestService_Login_Success issues a verifiable session token for the
correct passcode.
*/
func TestService_Login_Success(t *testing.T) {
	service := newAuthService(t, "mellon")

	token, expiresAt, err := service.Login("mellon")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	signer, err := sec.NewSessionSigner("test-secret-0123456789abcdef", constants.SessionIssuer, time.Hour)
	require.NoError(t, err)
	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionIssuer, claims.Issuer)
}

/*
TestService_Login_WrongPasscode rejects a bad passcode with a generic
unauthorized error.
*/
func TestService_Login_WrongPasscode(t *testing.T) {
	service := newAuthService(t, "mellon")

	_, _, err := service.Login("friend")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestService_Login_EmptyPasscode fails validation before touching bcrypt.
*/
func TestService_Login_EmptyPasscode(t *testing.T) {
	service := newAuthService(t, "mellon")

	_, _, err := service.Login("")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
