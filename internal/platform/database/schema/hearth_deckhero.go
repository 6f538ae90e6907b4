package schema

// DeckHeroTable represents the 'hearth.deck_heroes' table
type DeckHeroTable struct {
	Table    string
	DeckID   string
	CardCode string
	Slot     string
}

// DeckHero is the schema definition for hearth.deck_heroes
var DeckHero = DeckHeroTable{
	Table:    "hearth.deck_heroes",
	DeckID:   "deck_id",
	CardCode: "card_code",
	Slot:     "slot",
}
