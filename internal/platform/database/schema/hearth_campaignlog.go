package schema

// CampaignLogTable represents the 'hearth.campaign_log' table
type CampaignLogTable struct {
	Table      string
	ID         string
	CampaignID string
	RunID      string
	Type       string
	Message    string
	Meta       string
	CreatedAt  string
}

// CampaignLog is the schema definition for hearth.campaign_log
var CampaignLog = CampaignLogTable{
	Table:      "hearth.campaign_log",
	ID:         "id",
	CampaignID: "campaign_id",
	RunID:      "run_id",
	Type:       "type",
	Message:    "message",
	Meta:       "meta",
	CreatedAt:  "created_at",
}
