package schema

// CampaignRunTable represents the 'hearth.campaign_runs' table
type CampaignRunTable struct {
	Table      string
	ID         string
	CampaignID string
	ScenarioID string
	PlayedAt   string
	Result     string
	Score      string
	ThreatEnd  string
	Rounds     string
	Notes      string
	CreatedAt  string
	UpdatedAt  string
}

// CampaignRun is the schema definition for hearth.campaign_runs
var CampaignRun = CampaignRunTable{
	Table:      "hearth.campaign_runs",
	ID:         "id",
	CampaignID: "campaign_id",
	ScenarioID: "scenario_id",
	PlayedAt:   "played_at",
	Result:     "result",
	Score:      "score",
	ThreatEnd:  "threat_end",
	Rounds:     "rounds",
	Notes:      "notes",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
