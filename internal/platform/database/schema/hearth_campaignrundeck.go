package schema

// CampaignRunDeckTable represents the 'hearth.campaign_run_decks' table
type CampaignRunDeckTable struct {
	Table  string
	RunID  string
	DeckID string
	Role   string
	Notes  string
}

// CampaignRunDeck is the schema definition for hearth.campaign_run_decks
var CampaignRunDeck = CampaignRunDeckTable{
	Table:  "hearth.campaign_run_decks",
	RunID:  "run_id",
	DeckID: "deck_id",
	Role:   "role",
	Notes:  "notes",
}
