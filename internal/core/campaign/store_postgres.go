package campaign

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/database/schema"
	"github.com/fellhollow/hearthdeck/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed campaign store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Campaigns

func (repository *PostgresRepository) ListCampaigns(context context.Context) ([]*Campaign, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s DESC`,
		schema.Campaign.ID, schema.Campaign.Name, schema.Campaign.Description,
		schema.Campaign.Ruleset, schema.Campaign.CreatedAt, schema.Campaign.UpdatedAt,
		schema.Campaign.Table, schema.Campaign.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_campaigns")
	}
	defer rows.Close()

	campaigns := make([]*Campaign, 0)
	for rows.Next() {
		campaign := &Campaign{}
		err := rows.Scan(&campaign.ID, &campaign.Name, &campaign.Description,
			&campaign.Ruleset, &campaign.CreatedAt, &campaign.UpdatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_campaign")
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

func (repository *PostgresRepository) GetCampaignByID(context context.Context, id string) (*Campaign, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Campaign.ID, schema.Campaign.Name, schema.Campaign.Description,
		schema.Campaign.Ruleset, schema.Campaign.CreatedAt, schema.Campaign.UpdatedAt,
		schema.Campaign.Table, schema.Campaign.ID)

	campaign := &Campaign{}
	err := repository.db.QueryRow(context, query, id).Scan(&campaign.ID, &campaign.Name,
		&campaign.Description, &campaign.Ruleset, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_campaign")
	}
	return campaign, nil
}

func (repository *PostgresRepository) CreateCampaign(context context.Context, campaign *Campaign) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s, %s`,
		schema.Campaign.Table, schema.Campaign.ID, schema.Campaign.Name,
		schema.Campaign.Description, schema.Campaign.Ruleset,
		schema.Campaign.CreatedAt, schema.Campaign.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		campaign.ID, campaign.Name, campaign.Description, campaign.Ruleset).
		Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_campaign")
	}
	return nil
}

func (repository *PostgresRepository) UpdateCampaign(context context.Context, campaign *Campaign) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW() WHERE %s = $1 RETURNING %s`,
		schema.Campaign.Table, schema.Campaign.Name, schema.Campaign.Description,
		schema.Campaign.Ruleset, schema.Campaign.UpdatedAt, schema.Campaign.ID,
		schema.Campaign.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		campaign.ID, campaign.Name, campaign.Description, campaign.Ruleset).
		Scan(&campaign.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_campaign")
	}
	return nil
}

/*
DeleteCampaign removes a campaign and everything hanging off it in one
transaction: run deck links, log entries, state, runs, scenarios, then
the campaign row itself.
*/
func (repository *PostgresRepository) DeleteCampaign(context context.Context, id string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_campaign_tx")
	}
	defer transaction.Rollback(context)

	runDeckQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = $1)`,
		schema.CampaignRunDeck.Table, schema.CampaignRunDeck.RunID,
		schema.CampaignRun.ID, schema.CampaignRun.Table, schema.CampaignRun.CampaignID)
	if _, err := transaction.Exec(context, runDeckQuery, id); err != nil {
		return dberr.Wrap(err, "delete_campaign_run_decks")
	}

	children := []struct {
		table  string
		column string
	}{
		{schema.CampaignLog.Table, schema.CampaignLog.CampaignID},
		{schema.CampaignState.Table, schema.CampaignState.CampaignID},
		{schema.CampaignRun.Table, schema.CampaignRun.CampaignID},
		{schema.CampaignScenario.Table, schema.CampaignScenario.CampaignID},
	}
	for _, child := range children {
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, child.table, child.column)
		if _, err := transaction.Exec(context, query, id); err != nil {
			return dberr.Wrap(err, "delete_campaign_children")
		}
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Campaign.Table, schema.Campaign.ID)
	result, err := transaction.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_campaign")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Campaign")
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) CampaignStats(context context.Context, id string) (int, int, int, int, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %s WHERE %s = $1),
			(SELECT COUNT(*) FROM %s WHERE %s = $1),
			(SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s = 'win'),
			(SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = $1)
	`,
		schema.CampaignScenario.Table, schema.CampaignScenario.CampaignID,
		schema.CampaignRun.Table, schema.CampaignRun.CampaignID,
		schema.CampaignRun.Table, schema.CampaignRun.CampaignID, schema.CampaignRun.Result,
		schema.CampaignRun.Score, schema.CampaignRun.Table, schema.CampaignRun.CampaignID)

	var scenarios, runs, wins, totalScore int
	err := repository.db.QueryRow(context, query, id).Scan(&scenarios, &runs, &wins, &totalScore)
	if err != nil {
		return 0, 0, 0, 0, dberr.Wrap(err, "campaign_stats")
	}
	return scenarios, runs, wins, totalScore, nil
}

// # Scenarios

func (repository *PostgresRepository) ListScenarios(context context.Context, campaignID string) ([]*Scenario, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		schema.CampaignScenario.ID, schema.CampaignScenario.CampaignID, schema.CampaignScenario.Title,
		schema.CampaignScenario.PackCode, schema.CampaignScenario.ScenarioCode,
		schema.CampaignScenario.Position, schema.CampaignScenario.CreatedAt,
		schema.CampaignScenario.Table, schema.CampaignScenario.CampaignID,
		schema.CampaignScenario.Position, schema.CampaignScenario.CreatedAt)

	rows, err := repository.db.Query(context, query, campaignID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_scenarios")
	}
	defer rows.Close()

	scenarios := make([]*Scenario, 0)
	for rows.Next() {
		scenario := &Scenario{}
		err := rows.Scan(&scenario.ID, &scenario.CampaignID, &scenario.Title,
			&scenario.PackCode, &scenario.ScenarioCode, &scenario.Position, &scenario.CreatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_scenario")
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

/*
CreateScenario appends the scenario at the end of the campaign's list.
The position is computed in the insert itself: one past the current
maximum, or zero for the first scenario.
*/
func (repository *PostgresRepository) CreateScenario(context context.Context, scenario *Scenario) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(%s) + 1, 0) FROM %s WHERE %s = $2))
		RETURNING %s, %s
	`,
		schema.CampaignScenario.Table, schema.CampaignScenario.ID, schema.CampaignScenario.CampaignID,
		schema.CampaignScenario.Title, schema.CampaignScenario.PackCode, schema.CampaignScenario.ScenarioCode,
		schema.CampaignScenario.Position,
		schema.CampaignScenario.Position, schema.CampaignScenario.Table, schema.CampaignScenario.CampaignID,
		schema.CampaignScenario.Position, schema.CampaignScenario.CreatedAt)

	err := repository.db.QueryRow(context, query,
		scenario.ID, scenario.CampaignID, scenario.Title, scenario.PackCode, scenario.ScenarioCode).
		Scan(&scenario.Position, &scenario.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_scenario")
	}
	return nil
}

/*
SwapScenarioPositions writes both position updates of a reorder inside
one transaction, so a failure leaves the list untouched instead of
half-swapped.
*/
func (repository *PostgresRepository) SwapScenarioPositions(context context.Context, firstID string, firstPosition int, secondID string, secondPosition int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_swap_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.CampaignScenario.Table, schema.CampaignScenario.Position, schema.CampaignScenario.ID)

	if _, err := transaction.Exec(context, query, firstID, firstPosition); err != nil {
		return dberr.Wrap(err, "swap_scenario_first")
	}
	if _, err := transaction.Exec(context, query, secondID, secondPosition); err != nil {
		return dberr.Wrap(err, "swap_scenario_second")
	}

	return transaction.Commit(context)
}

// # Runs

func (repository *PostgresRepository) ListRuns(context context.Context, campaignID string) ([]*Run, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		schema.CampaignRun.ID, schema.CampaignRun.CampaignID, schema.CampaignRun.ScenarioID,
		schema.CampaignRun.PlayedAt, schema.CampaignRun.Result, schema.CampaignRun.Score,
		schema.CampaignRun.ThreatEnd, schema.CampaignRun.Rounds, schema.CampaignRun.Notes,
		schema.CampaignRun.CreatedAt, schema.CampaignRun.UpdatedAt,
		schema.CampaignRun.Table, schema.CampaignRun.CampaignID,
		schema.CampaignRun.PlayedAt, schema.CampaignRun.CreatedAt)

	rows, err := repository.db.Query(context, query, campaignID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_runs")
	}
	defer rows.Close()

	runs := make([]*Run, 0)
	for rows.Next() {
		run := &Run{}
		err := rows.Scan(&run.ID, &run.CampaignID, &run.ScenarioID, &run.PlayedAt, &run.Result,
			&run.Score, &run.ThreatEnd, &run.Rounds, &run.Notes, &run.CreatedAt, &run.UpdatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_run")
		}
		runs = append(runs, run)
	}
	rows.Close()

	if err := repository.attachRunDecks(context, runs); err != nil {
		return nil, err
	}
	return runs, nil
}

/*
CreateRun persists the run and its deck links in one transaction.
*/
func (repository *PostgresRepository) CreateRun(context context.Context, run *Run) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_run_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s
	`,
		schema.CampaignRun.Table, schema.CampaignRun.ID, schema.CampaignRun.CampaignID,
		schema.CampaignRun.ScenarioID, schema.CampaignRun.PlayedAt, schema.CampaignRun.Result,
		schema.CampaignRun.Score, schema.CampaignRun.ThreatEnd, schema.CampaignRun.Rounds,
		schema.CampaignRun.Notes,
		schema.CampaignRun.CreatedAt, schema.CampaignRun.UpdatedAt)

	err = transaction.QueryRow(context, query,
		run.ID, run.CampaignID, run.ScenarioID, run.PlayedAt, run.Result,
		run.Score, run.ThreatEnd, run.Rounds, run.Notes).
		Scan(&run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_run")
	}

	deckQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.CampaignRunDeck.Table, schema.CampaignRunDeck.RunID,
		schema.CampaignRunDeck.DeckID, schema.CampaignRunDeck.Role, schema.CampaignRunDeck.Notes)
	for _, link := range run.Decks {
		if _, err := transaction.Exec(context, deckQuery, run.ID, link.DeckID, link.Role, link.Notes); err != nil {
			return dberr.Wrap(err, "create_run_deck")
		}
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) LatestRun(context context.Context, campaignID string) (*Run, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC LIMIT 1`,
		schema.CampaignRun.ID, schema.CampaignRun.CampaignID, schema.CampaignRun.ScenarioID,
		schema.CampaignRun.PlayedAt, schema.CampaignRun.Result, schema.CampaignRun.Score,
		schema.CampaignRun.ThreatEnd, schema.CampaignRun.Rounds, schema.CampaignRun.Notes,
		schema.CampaignRun.CreatedAt, schema.CampaignRun.UpdatedAt,
		schema.CampaignRun.Table, schema.CampaignRun.CampaignID,
		schema.CampaignRun.PlayedAt, schema.CampaignRun.CreatedAt)

	run := &Run{}
	err := repository.db.QueryRow(context, query, campaignID).Scan(
		&run.ID, &run.CampaignID, &run.ScenarioID, &run.PlayedAt, &run.Result,
		&run.Score, &run.ThreatEnd, &run.Rounds, &run.Notes, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "latest_run")
	}

	if err := repository.attachRunDecks(context, []*Run{run}); err != nil {
		return nil, err
	}
	return run, nil
}

// attachRunDecks hydrates deck links with deck names and hero codes for
// a batch of runs.
func (repository *PostgresRepository) attachRunDecks(context context.Context, runs []*Run) error {
	if len(runs) == 0 {
		return nil
	}

	runIDs := make([]string, 0, len(runs))
	runMap := make(map[string]*Run, len(runs))
	for _, run := range runs {
		run.Decks = make([]RunDeck, 0)
		runIDs = append(runIDs, run.ID)
		runMap[run.ID] = run
	}

	linkQuery := fmt.Sprintf(`
		SELECT rd.%s, rd.%s, rd.%s, rd.%s, d.%s
		FROM %s rd
		JOIN %s d ON rd.%s = d.%s
		WHERE rd.%s = ANY($1)
		ORDER BY rd.%s ASC
	`,
		schema.CampaignRunDeck.RunID, schema.CampaignRunDeck.DeckID,
		schema.CampaignRunDeck.Role, schema.CampaignRunDeck.Notes, schema.Deck.Name,
		schema.CampaignRunDeck.Table, schema.Deck.Table,
		schema.CampaignRunDeck.DeckID, schema.Deck.ID,
		schema.CampaignRunDeck.RunID, schema.CampaignRunDeck.Role)

	rows, err := repository.db.Query(context, linkQuery, runIDs)
	if err != nil {
		return dberr.Wrap(err, "list_run_decks")
	}
	defer rows.Close()

	deckIDs := make([]string, 0)
	type linkRef struct {
		run   *Run
		index int
	}
	byDeck := make(map[string][]linkRef)

	for rows.Next() {
		var runID string
		link := RunDeck{}
		if err := rows.Scan(&runID, &link.DeckID, &link.Role, &link.Notes, &link.DeckName); err != nil {
			return dberr.Wrap(err, "scan_run_deck")
		}
		run := runMap[runID]
		run.Decks = append(run.Decks, link)
		byDeck[link.DeckID] = append(byDeck[link.DeckID], linkRef{run: run, index: len(run.Decks) - 1})
		deckIDs = append(deckIDs, link.DeckID)
	}
	rows.Close()

	if len(deckIDs) == 0 {
		return nil
	}

	heroQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s, %s ASC`,
		schema.DeckHero.DeckID, schema.DeckHero.CardCode, schema.DeckHero.Table,
		schema.DeckHero.DeckID, schema.DeckHero.DeckID, schema.DeckHero.Slot)

	heroRows, err := repository.db.Query(context, heroQuery, deckIDs)
	if err != nil {
		return dberr.Wrap(err, "list_run_deck_heroes")
	}
	defer heroRows.Close()

	for heroRows.Next() {
		var deckID, code string
		if err := heroRows.Scan(&deckID, &code); err != nil {
			return dberr.Wrap(err, "scan_run_deck_hero")
		}
		for _, ref := range byDeck[deckID] {
			ref.run.Decks[ref.index].Heroes = append(ref.run.Decks[ref.index].Heroes, RunDeckHero{Code: code})
		}
	}

	return nil
}

// # State

/*
GetOrCreateState returns the campaign's singleton state row, creating an
empty one on first access.
*/
func (repository *PostgresRepository) GetOrCreateState(context context.Context, campaignID string) (*State, error) {
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO NOTHING`,
		schema.CampaignState.Table, schema.CampaignState.CampaignID, schema.CampaignState.CampaignID)
	if _, err := repository.db.Exec(context, insertQuery, campaignID); err != nil {
		return nil, dberr.Wrap(err, "create_state")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1
	`,
		schema.CampaignState.CampaignID,
		schema.CampaignState.Player1, schema.CampaignState.Player2,
		schema.CampaignState.Player3, schema.CampaignState.Player4,
		schema.CampaignState.HeroesP1, schema.CampaignState.HeroesP2,
		schema.CampaignState.HeroesP3, schema.CampaignState.HeroesP4,
		schema.CampaignState.FallenHeroes, schema.CampaignState.ThreatPenalty,
		schema.CampaignState.Notes, schema.CampaignState.Boons, schema.CampaignState.Burdens,
		schema.CampaignState.CampaignTotalOverride, schema.CampaignState.UpdatedAt,
		schema.CampaignState.Table, schema.CampaignState.CampaignID)

	state := &State{}
	err := repository.db.QueryRow(context, query, campaignID).Scan(
		&state.CampaignID,
		&state.Player1, &state.Player2, &state.Player3, &state.Player4,
		&state.HeroesP1, &state.HeroesP2, &state.HeroesP3, &state.HeroesP4,
		&state.FallenHeroes, &state.ThreatPenalty,
		&state.Notes, &state.Boons, &state.Burdens,
		&state.CampaignTotalOverride, &state.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_state")
	}
	return state, nil
}

func (repository *PostgresRepository) UpdateState(context context.Context, state *State) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
			%s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CampaignState.Table,
		schema.CampaignState.Player1, schema.CampaignState.Player2,
		schema.CampaignState.Player3, schema.CampaignState.Player4,
		schema.CampaignState.HeroesP1, schema.CampaignState.HeroesP2,
		schema.CampaignState.HeroesP3, schema.CampaignState.HeroesP4,
		schema.CampaignState.FallenHeroes, schema.CampaignState.ThreatPenalty,
		schema.CampaignState.Notes, schema.CampaignState.Boons, schema.CampaignState.Burdens,
		schema.CampaignState.CampaignTotalOverride,
		schema.CampaignState.UpdatedAt,
		schema.CampaignState.CampaignID,
		schema.CampaignState.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		state.CampaignID,
		state.Player1, state.Player2, state.Player3, state.Player4,
		state.HeroesP1, state.HeroesP2, state.HeroesP3, state.HeroesP4,
		state.FallenHeroes, state.ThreatPenalty,
		state.Notes, state.Boons, state.Burdens,
		state.CampaignTotalOverride).
		Scan(&state.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_state")
	}
	return nil
}

// # Campaign Log

func (repository *PostgresRepository) AppendLog(context context.Context, entry *LogEntry) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`,
		schema.CampaignLog.Table, schema.CampaignLog.ID, schema.CampaignLog.CampaignID,
		schema.CampaignLog.RunID, schema.CampaignLog.Type, schema.CampaignLog.Message,
		schema.CampaignLog.Meta, schema.CampaignLog.CreatedAt)

	err := repository.db.QueryRow(context, query,
		entry.ID, entry.CampaignID, entry.RunID, entry.Type, entry.Message, entry.Meta).
		Scan(&entry.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "append_log")
	}
	return nil
}

func (repository *PostgresRepository) ListLog(context context.Context, campaignID string, limit, offset int) ([]*LogEntry, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.CampaignLog.ID, schema.CampaignLog.CampaignID, schema.CampaignLog.RunID,
		schema.CampaignLog.Type, schema.CampaignLog.Message, schema.CampaignLog.Meta,
		schema.CampaignLog.CreatedAt,
		schema.CampaignLog.Table, schema.CampaignLog.CampaignID,
		schema.CampaignLog.CreatedAt)

	rows, err := repository.db.Query(context, query, campaignID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_log")
	}
	defer rows.Close()

	entries := make([]*LogEntry, 0)
	var total int
	for rows.Next() {
		entry := &LogEntry{}
		err := rows.Scan(&entry.ID, &entry.CampaignID, &entry.RunID,
			&entry.Type, &entry.Message, &entry.Meta, &entry.CreatedAt, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_log")
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
