package campaign

import "context"

type Repository interface {
	ListCampaigns(context context.Context) ([]*Campaign, error)
	GetCampaignByID(context context.Context, id string) (*Campaign, error)
	CreateCampaign(context context.Context, campaign *Campaign) error
	UpdateCampaign(context context.Context, campaign *Campaign) error
	DeleteCampaign(context context.Context, id string) error
	CampaignStats(context context.Context, id string) (scenarios, runs, wins, totalScore int, err error)

	ListScenarios(context context.Context, campaignID string) ([]*Scenario, error)
	CreateScenario(context context.Context, scenario *Scenario) error
	SwapScenarioPositions(context context.Context, firstID string, firstPosition int, secondID string, secondPosition int) error

	ListRuns(context context.Context, campaignID string) ([]*Run, error)
	CreateRun(context context.Context, run *Run) error
	LatestRun(context context.Context, campaignID string) (*Run, error)

	GetOrCreateState(context context.Context, campaignID string) (*State, error)
	UpdateState(context context.Context, state *State) error

	AppendLog(context context.Context, entry *LogEntry) error
	ListLog(context context.Context, campaignID string, limit, offset int) ([]*LogEntry, int, error)
}
