package collection

import "time"

// Pack is one card pack in the household collection, synced from the
// card database catalog and toggled on or off for deckbuilding.
type Pack struct {
	PackCode  string    `json:"pack_code"`
	PackName  string    `json:"pack_name"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedCard records how many physical copies of a card the household
// owns. Zero is a meaningful value: it marks a card as explicitly
// not owned rather than merely untracked.
type OwnedCard struct {
	CardCode  string    `json:"card_code"`
	OwnedQty  int       `json:"owned_qty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeckUsage is one deck's claim on copies of a card.
type DeckUsage struct {
	DeckID   string `json:"deck_id"`
	DeckName string `json:"deck_name"`
	Qty      int    `json:"qty"`
}
