package schema

// CampaignScenarioTable represents the 'hearth.campaign_scenarios' table
type CampaignScenarioTable struct {
	Table        string
	ID           string
	CampaignID   string
	Title        string
	PackCode     string
	ScenarioCode string
	Position     string
	CreatedAt    string
}

// CampaignScenario is the schema definition for hearth.campaign_scenarios
var CampaignScenario = CampaignScenarioTable{
	Table:        "hearth.campaign_scenarios",
	ID:           "id",
	CampaignID:   "campaign_id",
	Title:        "title",
	PackCode:     "pack_code",
	ScenarioCode: "scenario_code",
	Position:     "position",
	CreatedAt:    "created_at",
}
