package schema

// CollectionCardTable represents the 'hearth.collection_cards' table
type CollectionCardTable struct {
	Table     string
	CardCode  string
	OwnedQty  string
	UpdatedAt string
}

// CollectionCard is the schema definition for hearth.collection_cards
var CollectionCard = CollectionCardTable{
	Table:     "hearth.collection_cards",
	CardCode:  "card_code",
	OwnedQty:  "owned_qty",
	UpdatedAt: "updated_at",
}
