// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

/*
Package ringsdb talks to the public RingsDB-style card database API.

The API is the single source of card metadata: the server never stores
card names, types, or pack contents locally. Lookups are cached in
Redis (see CachedSource) so a burst of deck exports does not hammer the
upstream.
*/
package ringsdb

import "context"

// Pack is one published card pack in the catalog.
type Pack struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Card is the subset of the upstream card payload the server cares about.
type Card struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	TypeCode string `json:"type_code"`
	Sphere   string `json:"sphere_code,omitempty"`
	PackCode string `json:"pack_code"`
	PackName string `json:"pack_name,omitempty"`
	Quantity int    `json:"quantity"`
	IsUnique bool   `json:"is_unique"`
}

// playerTypeCodes are the card types that belong in a player deck.
// Everything else in a pack is encounter content.
var playerTypeCodes = map[string]struct{}{
	"hero":              {},
	"ally":              {},
	"attachment":        {},
	"event":             {},
	"player-side-quest": {},
	"contract":          {},
	"treasure":          {},
}

// IsPlayerCard reports whether the card's type places it in player decks.
func IsPlayerCard(card Card) bool {
	_, ok := playerTypeCodes[card.TypeCode]
	return ok
}

// FilterPlayerCards keeps only cards usable in player decks.
func FilterPlayerCards(cards []Card) []Card {
	filtered := make([]Card, 0, len(cards))
	for _, card := range cards {
		if IsPlayerCard(card) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// Source is the card database read surface. Client implements it against
// the live API; CachedSource wraps any Source with a Redis cache.
type Source interface {
	Packs(context context.Context) ([]Pack, error)
	CardsByPack(context context.Context, packCode string) ([]Card, error)
	Card(context context.Context, code string) (*Card, error)
}
