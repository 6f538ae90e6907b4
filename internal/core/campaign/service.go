package campaign

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/constants"
	"github.com/fellhollow/hearthdeck/internal/platform/validate"
	"github.com/fellhollow/hearthdeck/internal/ringsdb"
	"github.com/fellhollow/hearthdeck/pkg/debounce"
	"github.com/fellhollow/hearthdeck/pkg/pagination"
	"github.com/fellhollow/hearthdeck/pkg/uuidv7"
)

// Campaign log event types.
const (
	LogCampaignCreated = "campaign_created"
	LogCampaignUpdated = "campaign_updated"
	LogScenarioAdded   = "scenario_added"
	LogRunCreated      = "run_created"
	LogStateUpdated    = "state_updated"
)

const maxCampaignNameLength = 160

type Service struct {
	repo      Repository
	cards     ringsdb.Source
	debouncer *debounce.Debouncer
	logger    *slog.Logger
}

func NewService(repo Repository, cards ringsdb.Source, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cards:     cards,
		debouncer: debounce.New(constants.AutosaveQuietPeriod, constants.AutosaveMaxWait),
		logger:    logger,
	}
}

// Close drops any pending debounced log writes. Called on shutdown.
func (service *Service) Close() {
	service.debouncer.Stop()
}

// # Campaigns

func (service *Service) ListCampaigns(context context.Context) ([]*Campaign, error) {
	return service.repo.ListCampaigns(context)
}

func (service *Service) GetCampaign(context context.Context, id string) (*Campaign, error) {
	return service.repo.GetCampaignByID(context, id)
}

func (service *Service) CreateCampaign(context context.Context, name, description, ruleset string) (*Campaign, error) {
	if ruleset == "" {
		ruleset = DefaultRuleset
	}

	v := &validate.Validator{}
	v.Required("name", name)
	v.MaxLen("name", name, maxCampaignNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	campaign := &Campaign{
		ID:          uuidv7.New(),
		Name:        name,
		Description: description,
		Ruleset:     ruleset,
	}
	if err := service.repo.CreateCampaign(context, campaign); err != nil {
		return nil, err
	}

	service.appendLog(context, campaign.ID, nil, LogCampaignCreated,
		"Campaign \""+campaign.Name+"\" created", map[string]any{"name": campaign.Name})
	service.logger.Info("campaign created", "campaign_id", campaign.ID, "name", campaign.Name)
	return campaign, nil
}

// CampaignPatch carries the updatable campaign header fields. Nil means
// "leave as is".
type CampaignPatch struct {
	Name        *string
	Description *string
	Ruleset     *string
}

func (service *Service) UpdateCampaign(context context.Context, id string, patch CampaignPatch) (*Campaign, error) {
	campaign, err := service.repo.GetCampaignByID(context, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		campaign.Name = *patch.Name
	}
	if patch.Description != nil {
		campaign.Description = *patch.Description
	}
	if patch.Ruleset != nil {
		campaign.Ruleset = *patch.Ruleset
	}

	v := &validate.Validator{}
	v.Required("name", campaign.Name)
	v.MaxLen("name", campaign.Name, maxCampaignNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateCampaign(context, campaign); err != nil {
		return nil, err
	}

	service.appendLog(context, campaign.ID, nil, LogCampaignUpdated, "Campaign details updated", nil)
	return campaign, nil
}

func (service *Service) DeleteCampaign(context context.Context, id string) error {
	if err := service.repo.DeleteCampaign(context, id); err != nil {
		return err
	}
	service.logger.Info("campaign deleted", "campaign_id", id)
	return nil
}

// Summary assembles the campaign overview: header, player names from
// the shared state, and run aggregates.
func (service *Service) Summary(context context.Context, id string) (*Summary, error) {
	campaign, err := service.repo.GetCampaignByID(context, id)
	if err != nil {
		return nil, err
	}

	scenarios, runs, wins, totalScore, err := service.repo.CampaignStats(context, id)
	if err != nil {
		return nil, err
	}

	state, err := service.repo.GetOrCreateState(context, id)
	if err != nil {
		return nil, err
	}

	players := make([]string, 0, 4)
	for _, player := range []string{state.Player1, state.Player2, state.Player3, state.Player4} {
		if player != "" {
			players = append(players, player)
		}
	}

	return &Summary{
		Campaign:      campaign,
		Players:       players,
		ScenarioCount: scenarios,
		RunCount:      runs,
		Wins:          wins,
		TotalScore:    totalScore,
	}, nil
}

// # Scenarios

func (service *Service) ListScenarios(context context.Context, campaignID string) ([]*Scenario, error) {
	return service.repo.ListScenarios(context, campaignID)
}

func (service *Service) AddScenario(context context.Context, campaignID, title, packCode, scenarioCode string) (*Scenario, error) {
	v := &validate.Validator{}
	v.Required("title", title)
	v.MaxLen("title", title, 200)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.GetCampaignByID(context, campaignID); err != nil {
		return nil, err
	}

	scenario := &Scenario{
		ID:           uuidv7.New(),
		CampaignID:   campaignID,
		Title:        title,
		PackCode:     packCode,
		ScenarioCode: scenarioCode,
	}
	if err := service.repo.CreateScenario(context, scenario); err != nil {
		return nil, err
	}

	service.appendLog(context, campaignID, nil, LogScenarioAdded,
		"Scenario \""+scenario.Title+"\" added", map[string]any{"scenario_id": scenario.ID})
	return scenario, nil
}

/*
ReorderScenario moves a scenario one step up or down by swapping its
position with its neighbor. Moving the first scenario up or the last
one down is a successful no-op. The two position writes happen in one
transaction, so the list is never left half-swapped.
*/
func (service *Service) ReorderScenario(context context.Context, campaignID, scenarioID, direction string) ([]*Scenario, error) {
	v := &validate.Validator{}
	v.OneOf("direction", direction, "up", "down")
	if err := v.Err(); err != nil {
		return nil, err
	}

	scenarios, err := service.repo.ListScenarios(context, campaignID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, scenario := range scenarios {
		if scenario.ID == scenarioID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperr.NotFound("Scenario")
	}

	neighbor := index - 1
	if direction == "down" {
		neighbor = index + 1
	}
	if neighbor < 0 || neighbor >= len(scenarios) {
		return scenarios, nil
	}

	current, other := scenarios[index], scenarios[neighbor]
	err = service.repo.SwapScenarioPositions(context,
		current.ID, other.Position, other.ID, current.Position)
	if err != nil {
		return nil, err
	}

	return service.repo.ListScenarios(context, campaignID)
}

// # Runs

func (service *Service) ListRuns(context context.Context, campaignID string) ([]*Run, error) {
	return service.repo.ListRuns(context, campaignID)
}

// RunInput is the payload for recording a play session.
type RunInput struct {
	ScenarioID *string
	PlayedAt   *time.Time
	Result     string
	Score      *int
	ThreatEnd  *int
	Rounds     *int
	Notes      string
	Decks      []RunDeck
}

func (service *Service) CreateRun(context context.Context, campaignID string, input RunInput) (*Run, error) {
	v := &validate.Validator{}
	v.Required("result", input.Result)
	v.OneOf("result", input.Result, ResultWin, ResultLoss, ResultConcede)
	if input.ScenarioID != nil {
		v.UUID("scenario_id", *input.ScenarioID)
	}
	for _, link := range input.Decks {
		v.UUID("decks", link.DeckID)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.GetCampaignByID(context, campaignID); err != nil {
		return nil, err
	}

	playedAt := time.Now().UTC()
	if input.PlayedAt != nil {
		playedAt = *input.PlayedAt
	}

	run := &Run{
		ID:         uuidv7.New(),
		CampaignID: campaignID,
		ScenarioID: input.ScenarioID,
		PlayedAt:   playedAt,
		Result:     input.Result,
		Score:      input.Score,
		ThreatEnd:  input.ThreatEnd,
		Rounds:     input.Rounds,
		Notes:      input.Notes,
		Decks:      input.Decks,
	}
	if err := service.repo.CreateRun(context, run); err != nil {
		return nil, err
	}

	service.appendLog(context, campaignID, &run.ID, LogRunCreated,
		"Run recorded: "+run.Result, map[string]any{"result": run.Result})
	service.logger.Info("run recorded", "campaign_id", campaignID, "run_id", run.ID, "result", run.Result)
	return run, nil
}

// LatestRun returns the most recent run with hero names resolved for
// its linked decks, or nil when the campaign has no runs yet.
func (service *Service) LatestRun(context context.Context, campaignID string) (*Run, error) {
	run, err := service.repo.LatestRun(context, campaignID)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, nil
		}
		return nil, err
	}

	for i := range run.Decks {
		for j := range run.Decks[i].Heroes {
			card, err := service.cards.Card(context, run.Decks[i].Heroes[j].Code)
			if err != nil {
				continue
			}
			run.Decks[i].Heroes[j].Name = card.Name
		}
	}
	return run, nil
}

// # State

func (service *Service) GetState(context context.Context, campaignID string) (*State, error) {
	if _, err := service.repo.GetCampaignByID(context, campaignID); err != nil {
		return nil, err
	}
	return service.repo.GetOrCreateState(context, campaignID)
}

// OptionalInt distinguishes an absent PATCH field from an explicit null,
// which clears the stored value.
type OptionalInt struct {
	Present bool
	Value   *int
}

func (optional *OptionalInt) UnmarshalJSON(data []byte) error {
	optional.Present = true
	if string(data) == "null" {
		optional.Value = nil
		return nil
	}
	return json.Unmarshal(data, &optional.Value)
}

// StatePatch carries partial updates to the campaign state. Nil fields
// are left untouched; field-level last-write-wins is the concurrency
// model for household co-editing.
type StatePatch struct {
	Player1               *string     `json:"player1"`
	Player2               *string     `json:"player2"`
	Player3               *string     `json:"player3"`
	Player4               *string     `json:"player4"`
	HeroesP1              *string     `json:"heroes_p1"`
	HeroesP2              *string     `json:"heroes_p2"`
	HeroesP3              *string     `json:"heroes_p3"`
	HeroesP4              *string     `json:"heroes_p4"`
	FallenHeroes          *string     `json:"fallen_heroes"`
	ThreatPenalty         *int        `json:"threat_penalty"`
	Notes                 *string     `json:"notes"`
	Boons                 *string     `json:"boons"`
	Burdens               *string     `json:"burdens"`
	CampaignTotalOverride OptionalInt `json:"campaign_total_override"`
}

/*
UpdateState applies a partial update to the campaign's shared notebook.
The row is written immediately; the state_updated log entry is debounced
per campaign, so an autosave burst from one editing session lands as a
single history event.
*/
func (service *Service) UpdateState(context context.Context, campaignID string, patch StatePatch) (*State, error) {
	state, err := service.GetState(context, campaignID)
	if err != nil {
		return nil, err
	}

	applyString := func(target *string, value *string) {
		if value != nil {
			*target = *value
		}
	}
	applyString(&state.Player1, patch.Player1)
	applyString(&state.Player2, patch.Player2)
	applyString(&state.Player3, patch.Player3)
	applyString(&state.Player4, patch.Player4)
	applyString(&state.HeroesP1, patch.HeroesP1)
	applyString(&state.HeroesP2, patch.HeroesP2)
	applyString(&state.HeroesP3, patch.HeroesP3)
	applyString(&state.HeroesP4, patch.HeroesP4)
	applyString(&state.FallenHeroes, patch.FallenHeroes)
	applyString(&state.Notes, patch.Notes)
	applyString(&state.Boons, patch.Boons)
	applyString(&state.Burdens, patch.Burdens)

	if patch.ThreatPenalty != nil {
		state.ThreatPenalty = *patch.ThreatPenalty
	}
	if patch.CampaignTotalOverride.Present {
		state.CampaignTotalOverride = patch.CampaignTotalOverride.Value
	}

	if err := service.repo.UpdateState(context, state); err != nil {
		return nil, err
	}

	service.debouncer.Trigger("state:"+campaignID, func() {
		service.appendLog(contextBackground(), campaignID, nil, LogStateUpdated, "Campaign state updated", nil)
	})

	return state, nil
}

// # Campaign Log

func (service *Service) ListLog(context context.Context, campaignID string, params pagination.Params) ([]*LogEntry, pagination.Meta, error) {
	if _, err := service.repo.GetCampaignByID(context, campaignID); err != nil {
		return nil, pagination.Meta{}, err
	}

	entries, total, err := service.repo.ListLog(context, campaignID, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return entries, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// appendLog records a history event. Log writes are best effort: a
// failure is logged and never fails the operation that triggered it.
func (service *Service) appendLog(context context.Context, campaignID string, runID *string, eventType, message string, meta map[string]any) {
	entry := &LogEntry{
		ID:         uuidv7.New(),
		CampaignID: campaignID,
		RunID:      runID,
		Type:       eventType,
		Message:    message,
		Meta:       meta,
	}
	if err := service.repo.AppendLog(context, entry); err != nil {
		service.logger.Warn("campaign log append failed",
			"campaign_id", campaignID, "type", eventType, "error", err)
	}
}

// contextBackground exists so the debounced log write does not inherit
// a request context that is long gone by the time the timer fires.
func contextBackground() context.Context {
	return context.Background()
}
