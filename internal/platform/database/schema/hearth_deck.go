package schema

// DeckTable represents the 'hearth.decks' table
type DeckTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Deck is the schema definition for hearth.decks
var Deck = DeckTable{
	Table:     "hearth.decks",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
