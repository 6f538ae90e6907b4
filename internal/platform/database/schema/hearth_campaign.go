package schema

// CampaignTable represents the 'hearth.campaigns' table
type CampaignTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Ruleset     string
	CreatedAt   string
	UpdatedAt   string
}

// Campaign is the schema definition for hearth.campaigns
var Campaign = CampaignTable{
	Table:       "hearth.campaigns",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Ruleset:     "ruleset",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
