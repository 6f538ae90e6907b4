// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package ringsdb

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fellhollow/hearthdeck/internal/platform/constants"
)

// CachedSource wraps a Source with a Redis read-through cache. Cache
// failures are logged and fall through to the upstream, never surfaced
// to callers.
type CachedSource struct {
	source Source
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSource(source Source, redisClient *redis.Client, logger *slog.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		redis:  redisClient,
		ttl:    constants.RingsDBCacheTTL,
		logger: logger,
	}
}

func (cached *CachedSource) Packs(context context.Context) ([]Pack, error) {
	var packs []Pack
	if cached.lookup(context, constants.RedisPrefixPacks, &packs) {
		return packs, nil
	}

	packs, err := cached.source.Packs(context)
	if err != nil {
		return nil, err
	}
	cached.store(context, constants.RedisPrefixPacks, packs)
	return packs, nil
}

func (cached *CachedSource) CardsByPack(context context.Context, packCode string) ([]Card, error) {
	key := constants.RedisPrefixPack + packCode

	var cards []Card
	if cached.lookup(context, key, &cards) {
		return cards, nil
	}

	cards, err := cached.source.CardsByPack(context, packCode)
	if err != nil {
		return nil, err
	}
	cached.store(context, key, cards)
	return cards, nil
}

func (cached *CachedSource) Card(context context.Context, code string) (*Card, error) {
	key := constants.RedisPrefixCard + code

	card := &Card{}
	if cached.lookup(context, key, card) {
		return card, nil
	}

	card, err := cached.source.Card(context, code)
	if err != nil {
		return nil, err
	}
	cached.store(context, key, card)
	return card, nil
}

func (cached *CachedSource) lookup(context context.Context, key string, target interface{}) bool {
	payload, err := cached.redis.Get(context, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cached.logger.Warn("card cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		cached.logger.Warn("card cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (cached *CachedSource) store(context context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		cached.logger.Warn("card cache encode failed", "key", key, "error", err)
		return
	}

	if err := cached.redis.Set(context, key, payload, cached.ttl).Err(); err != nil {
		cached.logger.Warn("card cache write failed", "key", key, "error", err)
	}
}
