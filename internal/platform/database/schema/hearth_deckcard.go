package schema

// DeckCardTable represents the 'hearth.deck_cards' table
type DeckCardTable struct {
	Table    string
	DeckID   string
	CardCode string
	Qty      string
}

// DeckCard is the schema definition for hearth.deck_cards
var DeckCard = DeckCardTable{
	Table:    "hearth.deck_cards",
	DeckID:   "deck_id",
	CardCode: "card_code",
	Qty:      "qty",
}
