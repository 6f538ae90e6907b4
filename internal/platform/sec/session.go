// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

// Package sec provides cryptographic primitives for the household session.
//
// # Architecture
//
// This package isolates security-sensitive code (passcode hashing, session
// token signing) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via small interfaces.
//
// There are no per-user accounts: the whole household shares one passcode,
// and a successful login mints one HMAC-signed (HS256) session token carried
// in an HttpOnly cookie.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload embedded inside the household session token.
//
// # Why so small?
//
// The household is a single shared identity. The token only has to prove
// "someone entered the passcode"; it carries no user ID, no role, no email.
// Issued-at is kept so the cookie expiry survives server restarts.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionSigner mints and verifies household session tokens using HS256.
//
// HS256 keeps the scheme symmetric: the same SESSION_SECRET both signs and
// verifies, which matches the single-server household deployment.
type SessionSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionSigner constructs a [SessionSigner].
func NewSessionSigner(secret, issuer string, ttl time.Duration) (*SessionSigner, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("sec: session secret must be at least 16 bytes")
	}
	return &SessionSigner{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// TTL returns the configured session lifetime.
func (signer *SessionSigner) TTL() time.Duration {
	return signer.ttl
}

// Issue creates a new signed session token.
func (signer *SessionSigner) Issue() (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(signer.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, issuer, and expiry of a session token string.
func (signer *SessionSigner) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	}, jwt.WithIssuer(signer.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid session claims")
	}

	return claims, nil
}
