package deck

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/database/schema"
	"github.com/fellhollow/hearthdeck/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed deck store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Deck Retrieval

/*
ListDecks returns every deck with heroes and cards attached, newest first.

Description: The whole household shares one deck shelf, so the list is
small; heroes and cards are hydrated with two follow-up queries instead
of per-deck round trips.
*/
func (repository *PostgresRepository) ListDecks(context context.Context) ([]*Deck, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s DESC`,
		schema.Deck.ID, schema.Deck.Name, schema.Deck.CreatedAt, schema.Deck.UpdatedAt,
		schema.Deck.Table, schema.Deck.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_decks")
	}
	defer rows.Close()

	decks := make([]*Deck, 0)
	deckMap := make(map[string]*Deck)
	for rows.Next() {
		deck := &Deck{Heroes: make([]string, 0, 3), Cards: make([]CardEntry, 0)}
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_deck")
		}
		decks = append(decks, deck)
		deckMap[deck.ID] = deck
	}
	rows.Close()

	heroQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s ASC`,
		schema.DeckHero.DeckID, schema.DeckHero.CardCode,
		schema.DeckHero.Table, schema.DeckHero.DeckID, schema.DeckHero.Slot)

	heroRows, err := repository.db.Query(context, heroQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_deck_heroes")
	}
	defer heroRows.Close()

	for heroRows.Next() {
		var deckID string
		var code string
		if err := heroRows.Scan(&deckID, &code); err != nil {
			return nil, dberr.Wrap(err, "scan_deck_hero")
		}
		if deck, ok := deckMap[deckID]; ok {
			deck.Heroes = append(deck.Heroes, code)
		}
	}
	heroRows.Close()

	cardQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s, %s ASC`,
		schema.DeckCard.DeckID, schema.DeckCard.CardCode, schema.DeckCard.Qty,
		schema.DeckCard.Table, schema.DeckCard.DeckID, schema.DeckCard.CardCode)

	cardRows, err := repository.db.Query(context, cardQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_deck_cards")
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var deckID string
		entry := CardEntry{}
		if err := cardRows.Scan(&deckID, &entry.CardCode, &entry.Qty); err != nil {
			return nil, dberr.Wrap(err, "scan_deck_card")
		}
		if deck, ok := deckMap[deckID]; ok {
			deck.Cards = append(deck.Cards, entry)
		}
	}

	return decks, nil
}

/*
GetDeckByID retrieves a single deck with heroes and cards hydrated.
*/
func (repository *PostgresRepository) GetDeckByID(context context.Context, id string) (*Deck, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Deck.ID, schema.Deck.Name, schema.Deck.CreatedAt, schema.Deck.UpdatedAt,
		schema.Deck.Table, schema.Deck.ID)

	deck := &Deck{Heroes: make([]string, 0, 3), Cards: make([]CardEntry, 0)}
	err := repository.db.QueryRow(context, query, id).Scan(&deck.ID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_deck")
	}

	heroQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.DeckHero.CardCode, schema.DeckHero.Table, schema.DeckHero.DeckID, schema.DeckHero.Slot)

	heroRows, err := repository.db.Query(context, heroQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_deck_heroes")
	}
	defer heroRows.Close()

	for heroRows.Next() {
		var code string
		if err := heroRows.Scan(&code); err != nil {
			return nil, dberr.Wrap(err, "scan_deck_hero")
		}
		deck.Heroes = append(deck.Heroes, code)
	}
	heroRows.Close()

	cardQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.DeckCard.CardCode, schema.DeckCard.Qty, schema.DeckCard.Table, schema.DeckCard.DeckID, schema.DeckCard.CardCode)

	cardRows, err := repository.db.Query(context, cardQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_deck_cards")
	}
	defer cardRows.Close()

	for cardRows.Next() {
		entry := CardEntry{}
		if err := cardRows.Scan(&entry.CardCode, &entry.Qty); err != nil {
			return nil, dberr.Wrap(err, "scan_deck_card")
		}
		deck.Cards = append(deck.Cards, entry)
	}

	return deck, nil
}

// # Deck Mutation

/*
CreateDeck persists a new empty deck and fills in its timestamps.
*/
func (repository *PostgresRepository) CreateDeck(context context.Context, deck *Deck) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.Deck.Table, schema.Deck.ID, schema.Deck.Name,
		schema.Deck.CreatedAt, schema.Deck.UpdatedAt)

	err := repository.db.QueryRow(context, query, deck.ID, deck.Name).Scan(&deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_deck")
	}
	return nil
}

/*
RenameDeck updates the deck name and returns the refreshed record.
*/
func (repository *PostgresRepository) RenameDeck(context context.Context, id string, name string) (*Deck, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 RETURNING %s, %s, %s, %s`,
		schema.Deck.Table, schema.Deck.Name, schema.Deck.UpdatedAt, schema.Deck.ID,
		schema.Deck.ID, schema.Deck.Name, schema.Deck.CreatedAt, schema.Deck.UpdatedAt)

	deck := &Deck{}
	err := repository.db.QueryRow(context, query, id, name).Scan(&deck.ID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "rename_deck")
	}
	return deck, nil
}

/*
DeleteDeck removes a deck and its hero and card rows in one transaction,
children first.
*/
func (repository *PostgresRepository) DeleteDeck(context context.Context, id string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_deck_tx")
	}
	defer transaction.Rollback(context)

	cardQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.DeckCard.Table, schema.DeckCard.DeckID)
	if _, err := transaction.Exec(context, cardQuery, id); err != nil {
		return dberr.Wrap(err, "delete_deck_cards")
	}

	heroQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.DeckHero.Table, schema.DeckHero.DeckID)
	if _, err := transaction.Exec(context, heroQuery, id); err != nil {
		return dberr.Wrap(err, "delete_deck_heroes")
	}

	deckQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Deck.Table, schema.Deck.ID)
	result, err := transaction.Exec(context, deckQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_deck")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Deck")
	}

	return transaction.Commit(context)
}

// # Contents Mutation

/*
SetHeroes replaces the hero lineup inside one transaction.
*/
func (repository *PostgresRepository) SetHeroes(context context.Context, id string, codes []string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_set_heroes_tx")
	}
	defer transaction.Rollback(context)

	if err := repository.touchDeck(context, transaction, id); err != nil {
		return err
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.DeckHero.Table, schema.DeckHero.DeckID)
	if _, err := transaction.Exec(context, deleteQuery, id); err != nil {
		return dberr.Wrap(err, "clear_deck_heroes")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.DeckHero.Table, schema.DeckHero.DeckID, schema.DeckHero.CardCode, schema.DeckHero.Slot)
	for slot, code := range codes {
		if _, err := transaction.Exec(context, insertQuery, id, code, slot); err != nil {
			return dberr.Wrap(err, "insert_deck_hero")
		}
	}

	return transaction.Commit(context)
}

/*
UpsertCard sets the quantity for one card. Quantity zero deletes the row.
*/
func (repository *PostgresRepository) UpsertCard(context context.Context, id string, code string, qty int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_upsert_card_tx")
	}
	defer transaction.Rollback(context)

	if err := repository.touchDeck(context, transaction, id); err != nil {
		return err
	}

	if qty <= 0 {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
			schema.DeckCard.Table, schema.DeckCard.DeckID, schema.DeckCard.CardCode)
		if _, err := transaction.Exec(context, deleteQuery, id, code); err != nil {
			return dberr.Wrap(err, "delete_deck_card")
		}
		return transaction.Commit(context)
	}

	upsertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.DeckCard.Table, schema.DeckCard.DeckID, schema.DeckCard.CardCode, schema.DeckCard.Qty,
		schema.DeckCard.DeckID, schema.DeckCard.CardCode, schema.DeckCard.Qty, schema.DeckCard.Qty)
	if _, err := transaction.Exec(context, upsertQuery, id, code, qty); err != nil {
		return dberr.Wrap(err, "upsert_deck_card")
	}

	return transaction.Commit(context)
}

/*
ReplaceContents swaps the entire hero lineup and card pool for the
decoded set in one transaction. Callers see either the old deck or the
new one, never a half-applied import.
*/
func (repository *PostgresRepository) ReplaceContents(context context.Context, id string, contents Contents) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_tx")
	}
	defer transaction.Rollback(context)

	if err := repository.touchDeck(context, transaction, id); err != nil {
		return err
	}

	clearCards := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.DeckCard.Table, schema.DeckCard.DeckID)
	if _, err := transaction.Exec(context, clearCards, id); err != nil {
		return dberr.Wrap(err, "clear_deck_cards")
	}

	clearHeroes := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.DeckHero.Table, schema.DeckHero.DeckID)
	if _, err := transaction.Exec(context, clearHeroes, id); err != nil {
		return dberr.Wrap(err, "clear_deck_heroes")
	}

	heroQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.DeckHero.Table, schema.DeckHero.DeckID, schema.DeckHero.CardCode, schema.DeckHero.Slot)
	for slot, code := range contents.Heroes {
		if _, err := transaction.Exec(context, heroQuery, id, code, slot); err != nil {
			return dberr.Wrap(err, "insert_deck_hero")
		}
	}

	cardQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.DeckCard.Table, schema.DeckCard.DeckID, schema.DeckCard.CardCode, schema.DeckCard.Qty)
	for code, qty := range contents.Cards {
		if _, err := transaction.Exec(context, cardQuery, id, code, qty); err != nil {
			return dberr.Wrap(err, "insert_deck_card")
		}
	}

	return transaction.Commit(context)
}

// touchDeck bumps updated_at and doubles as the existence check for
// mutations against a deck id.
func (repository *PostgresRepository) touchDeck(context context.Context, transaction pgx.Tx, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`,
		schema.Deck.Table, schema.Deck.UpdatedAt, schema.Deck.ID)

	result, err := transaction.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "touch_deck")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Deck")
	}
	return nil
}
