package schema

// CampaignStateTable represents the 'hearth.campaign_state' table
type CampaignStateTable struct {
	Table                 string
	CampaignID            string
	Player1               string
	Player2               string
	Player3               string
	Player4               string
	HeroesP1              string
	HeroesP2              string
	HeroesP3              string
	HeroesP4              string
	FallenHeroes          string
	ThreatPenalty         string
	Notes                 string
	Boons                 string
	Burdens               string
	CampaignTotalOverride string
	UpdatedAt             string
}

// CampaignState is the schema definition for hearth.campaign_state
var CampaignState = CampaignStateTable{
	Table:                 "hearth.campaign_state",
	CampaignID:            "campaign_id",
	Player1:               "player1",
	Player2:               "player2",
	Player3:               "player3",
	Player4:               "player4",
	HeroesP1:              "heroes_p1",
	HeroesP2:              "heroes_p2",
	HeroesP3:              "heroes_p3",
	HeroesP4:              "heroes_p4",
	FallenHeroes:          "fallen_heroes",
	ThreatPenalty:         "threat_penalty",
	Notes:                 "notes",
	Boons:                 "boons",
	Burdens:               "burdens",
	CampaignTotalOverride: "campaign_total_override",
	UpdatedAt:             "updated_at",
}
