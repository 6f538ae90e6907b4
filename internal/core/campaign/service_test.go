package campaign_test

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/core/campaign"
	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/ringsdb"
	"github.com/fellhollow/hearthdeck/pkg/pagination"
	"github.com/fellhollow/hearthdeck/pkg/pointer"
)

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*campaign.Campaign
	scenarios map[string]*campaign.Scenario
	runs      map[string]*campaign.Run
	states    map[string]*campaign.State
	log       []*campaign.LogEntry
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{
		campaigns: make(map[string]*campaign.Campaign),
		scenarios: make(map[string]*campaign.Scenario),
		runs:      make(map[string]*campaign.Run),
		states:    make(map[string]*campaign.State),
	}
}

func (repo *fakeCampaignRepo) ListCampaigns(_ context.Context) ([]*campaign.Campaign, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	campaigns := make([]*campaign.Campaign, 0, len(repo.campaigns))
	for _, c := range repo.campaigns {
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

func (repo *fakeCampaignRepo) GetCampaignByID(_ context.Context, id string) (*campaign.Campaign, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	c, ok := repo.campaigns[id]
	if !ok {
		return nil, apperr.NotFound("Campaign")
	}
	return c, nil
}

func (repo *fakeCampaignRepo) CreateCampaign(_ context.Context, c *campaign.Campaign) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	repo.campaigns[c.ID] = c
	return nil
}

func (repo *fakeCampaignRepo) UpdateCampaign(_ context.Context, c *campaign.Campaign) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.campaigns[c.ID]; !ok {
		return apperr.NotFound("Campaign")
	}
	c.UpdatedAt = time.Now()
	repo.campaigns[c.ID] = c
	return nil
}

func (repo *fakeCampaignRepo) DeleteCampaign(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.campaigns[id]; !ok {
		return apperr.NotFound("Campaign")
	}
	delete(repo.campaigns, id)
	return nil
}

func (repo *fakeCampaignRepo) CampaignStats(_ context.Context, id string) (int, int, int, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	scenarios, runs, wins, total := 0, 0, 0, 0
	for _, s := range repo.scenarios {
		if s.CampaignID == id {
			scenarios++
		}
	}
	for _, r := range repo.runs {
		if r.CampaignID != id {
			continue
		}
		runs++
		if r.Result == campaign.ResultWin {
			wins++
		}
		if r.Score != nil {
			total += *r.Score
		}
	}
	return scenarios, runs, wins, total, nil
}

func (repo *fakeCampaignRepo) ListScenarios(_ context.Context, campaignID string) ([]*campaign.Scenario, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	scenarios := make([]*campaign.Scenario, 0)
	for _, s := range repo.scenarios {
		if s.CampaignID == campaignID {
			scenarios = append(scenarios, s)
		}
	}
	sort.Slice(scenarios, func(i, j int) bool {
		if scenarios[i].Position != scenarios[j].Position {
			return scenarios[i].Position < scenarios[j].Position
		}
		return scenarios[i].CreatedAt.Before(scenarios[j].CreatedAt)
	})
	return scenarios, nil
}

func (repo *fakeCampaignRepo) CreateScenario(_ context.Context, s *campaign.Scenario) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	position := -1
	for _, existing := range repo.scenarios {
		if existing.CampaignID == s.CampaignID && existing.Position > position {
			position = existing.Position
		}
	}
	s.Position = position + 1
	s.CreatedAt = time.Now()
	repo.scenarios[s.ID] = s
	return nil
}

func (repo *fakeCampaignRepo) SwapScenarioPositions(_ context.Context, firstID string, firstPosition int, secondID string, secondPosition int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.scenarios[firstID].Position = firstPosition
	repo.scenarios[secondID].Position = secondPosition
	return nil
}

func (repo *fakeCampaignRepo) ListRuns(_ context.Context, campaignID string) ([]*campaign.Run, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	runs := make([]*campaign.Run, 0)
	for _, r := range repo.runs {
		if r.CampaignID == campaignID {
			runs = append(runs, r)
		}
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].PlayedAt.After(runs[j].PlayedAt) })
	return runs, nil
}

func (repo *fakeCampaignRepo) CreateRun(_ context.Context, r *campaign.Run) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	repo.runs[r.ID] = r
	return nil
}

func (repo *fakeCampaignRepo) LatestRun(_ context.Context, campaignID string) (*campaign.Run, error) {
	runs, _ := repo.ListRuns(context.Background(), campaignID)
	if len(runs) == 0 {
		return nil, apperr.NotFound("Run")
	}
	return runs[0], nil
}

func (repo *fakeCampaignRepo) GetOrCreateState(_ context.Context, campaignID string) (*campaign.State, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if state, ok := repo.states[campaignID]; ok {
		return state, nil
	}
	state := &campaign.State{CampaignID: campaignID}
	repo.states[campaignID] = state
	return state, nil
}

func (repo *fakeCampaignRepo) UpdateState(_ context.Context, state *campaign.State) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	state.UpdatedAt = time.Now()
	repo.states[state.CampaignID] = state
	return nil
}

func (repo *fakeCampaignRepo) AppendLog(_ context.Context, entry *campaign.LogEntry) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	entry.CreatedAt = time.Now()
	repo.log = append(repo.log, entry)
	return nil
}

func (repo *fakeCampaignRepo) ListLog(_ context.Context, campaignID string, limit, offset int) ([]*campaign.LogEntry, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	matching := make([]*campaign.LogEntry, 0)
	for _, entry := range repo.log {
		if entry.CampaignID == campaignID {
			matching = append(matching, entry)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].CreatedAt.After(matching[j].CreatedAt) })
	total := len(matching)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matching[offset:end], total, nil
}

func (repo *fakeCampaignRepo) countLogEntries(campaignID, eventType string) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	count := 0
	for _, entry := range repo.log {
		if entry.CampaignID == campaignID && entry.Type == eventType {
			count++
		}
	}
	return count
}

type fakeHeroSource struct {
	cards map[string]ringsdb.Card
}

func (source *fakeHeroSource) Packs(_ context.Context) ([]ringsdb.Pack, error) {
	return nil, nil
}

func (source *fakeHeroSource) CardsByPack(_ context.Context, _ string) ([]ringsdb.Card, error) {
	return nil, nil
}

func (source *fakeHeroSource) Card(_ context.Context, code string) (*ringsdb.Card, error) {
	card, ok := source.cards[code]
	if !ok {
		return nil, apperr.NotFound("card data")
	}
	return &card, nil
}

func newCampaignService(repo campaign.Repository) *campaign.Service {
	return campaign.NewService(repo, &fakeHeroSource{}, slog.Default())
}

func seedCampaign(t *testing.T, service *campaign.Service) *campaign.Campaign {
	t.Helper()
	created, err := service.CreateCampaign(context.Background(), "Shadows of Mirkwood", "", "")
	require.NoError(t, err)
	return created
}

/*
TestService_CreateCampaign_Defaults assigns the default ruleset and
appends a creation event to the campaign log.
*/
func TestService_CreateCampaign_Defaults(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()

	created := seedCampaign(t, service)

	assert.Equal(t, campaign.DefaultRuleset, created.Ruleset)
	assert.Equal(t, 1, repo.countLogEntries(created.ID, campaign.LogCampaignCreated))

	_, err := service.CreateCampaign(context.Background(), "", "", "")
	require.Error(t, err)
}

/*
TestService_AddScenario_Positions appends scenarios at the end: zero for
the first, one past the maximum afterwards.
*/
func TestService_AddScenario_Positions(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	first, err := service.AddScenario(context.Background(), created.ID, "Passage Through Mirkwood", "Core", "")
	require.NoError(t, err)
	second, err := service.AddScenario(context.Background(), created.ID, "Journey Along the Anduin", "Core", "")
	require.NoError(t, err)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, 2, repo.countLogEntries(created.ID, campaign.LogScenarioAdded))
}

/*
TestService_ReorderScenario_Swap moves a middle scenario up by swapping
positions with its predecessor.
*/
func TestService_ReorderScenario_Swap(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	a, err := service.AddScenario(context.Background(), created.ID, "A", "", "")
	require.NoError(t, err)
	b, err := service.AddScenario(context.Background(), created.ID, "B", "", "")
	require.NoError(t, err)
	c, err := service.AddScenario(context.Background(), created.ID, "C", "", "")
	require.NoError(t, err)

	scenarios, err := service.ReorderScenario(context.Background(), created.ID, b.ID, "up")
	require.NoError(t, err)

	require.Len(t, scenarios, 3)
	assert.Equal(t, b.ID, scenarios[0].ID)
	assert.Equal(t, a.ID, scenarios[1].ID)
	assert.Equal(t, c.ID, scenarios[2].ID)

	positions := map[int]bool{}
	for _, scenario := range scenarios {
		assert.False(t, positions[scenario.Position], "positions must stay unique")
		positions[scenario.Position] = true
	}
}

/*
TestService_ReorderScenario_BoundaryNoOp treats moving the first
scenario up and the last one down as successful no-ops.
*/
func TestService_ReorderScenario_BoundaryNoOp(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	first, err := service.AddScenario(context.Background(), created.ID, "First", "", "")
	require.NoError(t, err)
	last, err := service.AddScenario(context.Background(), created.ID, "Last", "", "")
	require.NoError(t, err)

	scenarios, err := service.ReorderScenario(context.Background(), created.ID, first.ID, "up")
	require.NoError(t, err)
	assert.Equal(t, first.ID, scenarios[0].ID)

	scenarios, err = service.ReorderScenario(context.Background(), created.ID, last.ID, "down")
	require.NoError(t, err)
	assert.Equal(t, last.ID, scenarios[1].ID)
}

/*
TestService_ReorderScenario_NotFound reports a missing scenario id
distinctly from validation failures.
*/
func TestService_ReorderScenario_NotFound(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	_, err := service.ReorderScenario(context.Background(), created.ID, "00000000-0000-0000-0000-000000000000", "up")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	_, err = service.ReorderScenario(context.Background(), created.ID, "whatever", "sideways")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_CreateRun_Validation requires a result from the known set.
*/
func TestService_CreateRun_Validation(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	_, err := service.CreateRun(context.Background(), created.ID, campaign.RunInput{Result: ""})
	require.Error(t, err)

	_, err = service.CreateRun(context.Background(), created.ID, campaign.RunInput{Result: "draw"})
	require.Error(t, err)

	run, err := service.CreateRun(context.Background(), created.ID, campaign.RunInput{
		Result: campaign.ResultWin,
		Score:  pointer.To(42),
	})
	require.NoError(t, err)
	assert.Equal(t, campaign.ResultWin, run.Result)
	assert.False(t, run.PlayedAt.IsZero())
	assert.Equal(t, 1, repo.countLogEntries(created.ID, campaign.LogRunCreated))
}

/*
TestService_LatestRun resolves hero names for linked decks and returns
nil when no runs exist.
*/
func TestService_LatestRun(t *testing.T) {
	repo := newFakeCampaignRepo()
	source := &fakeHeroSource{cards: map[string]ringsdb.Card{
		"01001": {Code: "01001", Name: "Aragorn", TypeCode: "hero"},
	}}
	service := campaign.NewService(repo, source, slog.Default())
	defer service.Close()
	created := seedCampaign(t, service)

	run, err := service.LatestRun(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, run)

	repo.runs["r1"] = &campaign.Run{
		ID:         "r1",
		CampaignID: created.ID,
		PlayedAt:   time.Now(),
		Result:     campaign.ResultWin,
		Decks: []campaign.RunDeck{
			{DeckID: "d1", Heroes: []campaign.RunDeckHero{{Code: "01001"}, {Code: "99999"}}},
		},
	}

	run, err = service.LatestRun(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "Aragorn", run.Decks[0].Heroes[0].Name)
	assert.Empty(t, run.Decks[0].Heroes[1].Name)
}

/*
TestService_UpdateState_PartialPatch applies only the provided fields
and honors an explicit null for the total override.
*/
func TestService_UpdateState_PartialPatch(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	state, err := service.UpdateState(context.Background(), created.ID, campaign.StatePatch{
		Player1:       pointer.To("Imke"),
		Notes:         pointer.To("Lost the eagles early"),
		ThreatPenalty: pointer.To(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Imke", state.Player1)
	assert.Equal(t, 2, state.ThreatPenalty)

	state, err = service.UpdateState(context.Background(), created.ID, campaign.StatePatch{
		Player2: pointer.To("Jorik"),
		CampaignTotalOverride: campaign.OptionalInt{
			Present: true,
			Value:   pointer.To(120),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Imke", state.Player1)
	assert.Equal(t, "Jorik", state.Player2)
	require.NotNil(t, state.CampaignTotalOverride)
	assert.Equal(t, 120, *state.CampaignTotalOverride)

	state, err = service.UpdateState(context.Background(), created.ID, campaign.StatePatch{
		CampaignTotalOverride: campaign.OptionalInt{Present: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, state.CampaignTotalOverride)
}

/*
TestService_UpdateState_DebouncedLog coalesces an autosave burst into a
single state_updated history event while every write lands immediately.
*/
func TestService_UpdateState_DebouncedLog(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	for i := 0; i < 5; i++ {
		_, err := service.UpdateState(context.Background(), created.ID, campaign.StatePatch{
			Notes: pointer.To("draft"),
		})
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)
	}

	assert.Equal(t, 0, repo.countLogEntries(created.ID, campaign.LogStateUpdated))

	require.Eventually(t, func() bool {
		return repo.countLogEntries(created.ID, campaign.LogStateUpdated) == 1
	}, 3*time.Second, 25*time.Millisecond)

	// No second entry trails in after the burst settles.
	time.Sleep(time.Second)
	assert.Equal(t, 1, repo.countLogEntries(created.ID, campaign.LogStateUpdated))
}

/*
TestService_Summary aggregates players, run counts, and scores.
*/
func TestService_Summary(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	_, err := service.AddScenario(context.Background(), created.ID, "A", "", "")
	require.NoError(t, err)
	_, err = service.CreateRun(context.Background(), created.ID, campaign.RunInput{
		Result: campaign.ResultWin,
		Score:  pointer.To(30),
	})
	require.NoError(t, err)
	_, err = service.CreateRun(context.Background(), created.ID, campaign.RunInput{
		Result: campaign.ResultLoss,
		Score:  pointer.To(50),
	})
	require.NoError(t, err)
	_, err = service.UpdateState(context.Background(), created.ID, campaign.StatePatch{
		Player1: pointer.To("Imke"),
		Player3: pointer.To("Jorik"),
	})
	require.NoError(t, err)

	summary, err := service.Summary(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"Imke", "Jorik"}, summary.Players)
	assert.Equal(t, 1, summary.ScenarioCount)
	assert.Equal(t, 2, summary.RunCount)
	assert.Equal(t, 1, summary.Wins)
	assert.Equal(t, 80, summary.TotalScore)
}

/*
TestService_ListLog pages the newest-first history feed.
*/
func TestService_ListLog(t *testing.T) {
	repo := newFakeCampaignRepo()
	service := newCampaignService(repo)
	defer service.Close()
	created := seedCampaign(t, service)

	for i := 0; i < 3; i++ {
		_, err := service.AddScenario(context.Background(), created.ID, "Scenario", "", "")
		require.NoError(t, err)
	}

	entries, meta, err := service.ListLog(context.Background(), created.ID, pagination.Params{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 4, meta.Total) // campaign_created + 3 scenario_added
	assert.Equal(t, 2, meta.TotalPages)
}
