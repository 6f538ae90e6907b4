package campaign

import "time"

// Result values a run may record.
const (
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultConcede = "concede"
)

// DefaultRuleset is assigned when a campaign is created without one.
const DefaultRuleset = "custom"

// Campaign is one long-running play-through the household tracks:
// an ordered scenario list, played runs, and a shared narrative state.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ruleset     string    `json:"ruleset"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Scenario is one entry in a campaign's ordered scenario list.
type Scenario struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	Title        string    `json:"title"`
	PackCode     string    `json:"pack_code,omitempty"`
	ScenarioCode string    `json:"scenario_code,omitempty"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// Run is one recorded play session against a scenario.
type Run struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	ScenarioID *string   `json:"scenario_id"`
	PlayedAt   time.Time `json:"played_at"`
	Result     string    `json:"result"`
	Score      *int      `json:"score"`
	ThreatEnd  *int      `json:"threat_end"`
	Rounds     *int      `json:"rounds"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Decks []RunDeck `json:"decks,omitempty"`
}

// RunDeck links a deck that was played in a run, with an optional role
// such as "player1". DeckName and Heroes are hydrated for display.
type RunDeck struct {
	DeckID   string        `json:"deck_id"`
	Role     string        `json:"role,omitempty"`
	Notes    string        `json:"notes,omitempty"`
	DeckName string        `json:"deck_name,omitempty"`
	Heroes   []RunDeckHero `json:"heroes,omitempty"`
}

// RunDeckHero is a hero slot of a linked deck, with the display name
// resolved from the card database when available.
type RunDeckHero struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// State is the singleton shared notebook of a campaign: who plays,
// which heroes they run, and the narrative bookkeeping the rules ask
// for. One row per campaign, created lazily on first read.
type State struct {
	CampaignID            string    `json:"campaign_id"`
	Player1               string    `json:"player1"`
	Player2               string    `json:"player2"`
	Player3               string    `json:"player3"`
	Player4               string    `json:"player4"`
	HeroesP1              string    `json:"heroes_p1"`
	HeroesP2              string    `json:"heroes_p2"`
	HeroesP3              string    `json:"heroes_p3"`
	HeroesP4              string    `json:"heroes_p4"`
	FallenHeroes          string    `json:"fallen_heroes"`
	ThreatPenalty         int       `json:"threat_penalty"`
	Notes                 string    `json:"notes"`
	Boons                 string    `json:"boons"`
	Burdens               string    `json:"burdens"`
	CampaignTotalOverride *int      `json:"campaign_total_override"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// LogEntry is one append-only event in the campaign history feed.
type LogEntry struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaign_id"`
	RunID      *string        `json:"run_id,omitempty"`
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	Meta       map[string]any `json:"meta,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Summary is the campaign overview card: header data plus aggregates
// over scenarios and runs.
type Summary struct {
	Campaign      *Campaign `json:"campaign"`
	Players       []string  `json:"players"`
	ScenarioCount int       `json:"scenario_count"`
	RunCount      int       `json:"run_count"`
	Wins          int       `json:"wins"`
	TotalScore    int       `json:"total_score"`
}
