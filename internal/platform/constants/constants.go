// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session issuer and cookie configuration.
  - Autosave: Debounce windows for coalesced campaign log writes.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hearthdeck-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// SessionIssuer is the standard 'iss' claim in the session token.
	SessionIssuer = "hearthdeck.app"

	// SessionCookieName is the name of the household session cookie.
	SessionCookieName = "hearth_session"

	// SessionCookiePath scopes the cookie to the whole site so every
	// collection and deck page can carry it.
	SessionCookiePath = "/"

	// SessionTTL is how long a household login stays valid.
	SessionTTL = 30 * 24 * time.Hour
)

// # Autosave Coalescing

const (
	// AutosaveQuietPeriod is how long a campaign must be idle before the
	// coalesced state_updated log entry is written.
	AutosaveQuietPeriod = 800 * time.Millisecond

	// AutosaveMaxWait bounds how long a pending log write may be deferred
	// by a stream of edits before it is flushed anyway.
	AutosaveMaxWait = 15 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schema

const (
	SchemaHearth = "hearth"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCard  = "ringsdb:card:"
	RedisPrefixPacks = "ringsdb:packs"
	RedisPrefixPack  = "ringsdb:pack:"
)

// # Third-Party Card Database

const (
	// RingsDBBaseURL is the public card database endpoint.
	RingsDBBaseURL = "https://ringsdb.com/api/public"

	// RingsDBCacheTTL is how long card and pack lookups are cached.
	RingsDBCacheTTL = 1 * time.Hour
)
