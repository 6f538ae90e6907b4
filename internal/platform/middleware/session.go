// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package middleware

import (
	"net/http"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/constants"
	"github.com/fellhollow/hearthdeck/internal/platform/ctxutil"
	"github.com/fellhollow/hearthdeck/internal/platform/respond"
	"github.com/fellhollow/hearthdeck/internal/platform/sec"
)

// SessionVerifier defines the interface needed to verify session cookies.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the concrete
// [sec.SessionSigner], allowing mocks to be injected during unit testing.
type SessionVerifier interface {
	Verify(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the household session cookie.
//
// # Flow
//  1. Look for the session cookie.
//  2. If absent, the request proceeds as anonymous ([RequireSession]
//     decides later whether that is acceptable for the route).
//  3. If present, verify the HMAC signature and expiry.
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// An invalid cookie is treated the same as a missing one: the household
// member is simply asked to log in again.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that do not carry a valid household session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Every data-reading
// and data-mutating route group mounts this; only login and session-check
// endpoints stay open.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
