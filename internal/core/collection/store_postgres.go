package collection

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fellhollow/hearthdeck/internal/platform/database/schema"
	"github.com/fellhollow/hearthdeck/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed collection store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Pack Catalog

func (repository *PostgresRepository) ListPacks(context context.Context) ([]*Pack, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CollectionPack.PackCode, schema.CollectionPack.PackName,
		schema.CollectionPack.Enabled, schema.CollectionPack.UpdatedAt,
		schema.CollectionPack.Table, schema.CollectionPack.PackName)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_packs")
	}
	defer rows.Close()

	packs := make([]*Pack, 0)
	for rows.Next() {
		pack := &Pack{}
		if err := rows.Scan(&pack.PackCode, &pack.PackName, &pack.Enabled, &pack.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_pack")
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

/*
SyncPacks reconciles the local pack table with the upstream catalog in
one transaction. New packs are inserted with their default enablement;
packs already present keep whatever the household toggled and only the
display name is refreshed.
*/
func (repository *PostgresRepository) SyncPacks(context context.Context, packs []Pack, defaultEnabled map[string]bool) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_sync_packs_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.CollectionPack.Table, schema.CollectionPack.PackCode,
		schema.CollectionPack.PackName, schema.CollectionPack.Enabled,
		schema.CollectionPack.PackCode,
		schema.CollectionPack.PackName, schema.CollectionPack.PackName,
		schema.CollectionPack.UpdatedAt)

	for _, pack := range packs {
		if _, err := transaction.Exec(context, query, pack.PackCode, pack.PackName, defaultEnabled[pack.PackCode]); err != nil {
			return dberr.Wrap(err, "sync_pack")
		}
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) SetPackEnabled(context context.Context, packCode string, enabled bool) (*Pack, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 RETURNING %s, %s, %s, %s`,
		schema.CollectionPack.Table, schema.CollectionPack.Enabled,
		schema.CollectionPack.UpdatedAt, schema.CollectionPack.PackCode,
		schema.CollectionPack.PackCode, schema.CollectionPack.PackName,
		schema.CollectionPack.Enabled, schema.CollectionPack.UpdatedAt)

	pack := &Pack{}
	err := repository.db.QueryRow(context, query, packCode, enabled).Scan(
		&pack.PackCode, &pack.PackName, &pack.Enabled, &pack.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "set_pack_enabled")
	}
	return pack, nil
}

// # Owned Quantities

/*
GetOwned returns owned quantities keyed by card code. An empty code list
returns the whole collection.
*/
func (repository *PostgresRepository) GetOwned(context context.Context, codes []string) (map[string]int, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s`,
		schema.CollectionCard.CardCode, schema.CollectionCard.OwnedQty, schema.CollectionCard.Table)

	args := []any{}
	if len(codes) > 0 {
		query += fmt.Sprintf(` WHERE %s = ANY($1)`, schema.CollectionCard.CardCode)
		args = append(args, codes)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "get_owned")
	}
	defer rows.Close()

	owned := make(map[string]int)
	for rows.Next() {
		var code string
		var qty int
		if err := rows.Scan(&code, &qty); err != nil {
			return nil, dberr.Wrap(err, "scan_owned")
		}
		owned[code] = qty
	}
	return owned, nil
}

func (repository *PostgresRepository) UpsertOwned(context context.Context, code string, qty int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.CollectionCard.Table, schema.CollectionCard.CardCode, schema.CollectionCard.OwnedQty,
		schema.CollectionCard.CardCode,
		schema.CollectionCard.OwnedQty, schema.CollectionCard.OwnedQty,
		schema.CollectionCard.UpdatedAt)

	if _, err := repository.db.Exec(context, query, code, qty); err != nil {
		return dberr.Wrap(err, "upsert_owned")
	}
	return nil
}

/*
BulkUpsertOwned writes a batch of owned quantities in one transaction,
so a pack-worth of checkbox flips lands atomically.
*/
func (repository *PostgresRepository) BulkUpsertOwned(context context.Context, cards []OwnedCard) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_bulk_owned_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.CollectionCard.Table, schema.CollectionCard.CardCode, schema.CollectionCard.OwnedQty,
		schema.CollectionCard.CardCode,
		schema.CollectionCard.OwnedQty, schema.CollectionCard.OwnedQty,
		schema.CollectionCard.UpdatedAt)

	for _, card := range cards {
		if _, err := transaction.Exec(context, query, card.CardCode, card.OwnedQty); err != nil {
			return dberr.Wrap(err, "bulk_upsert_owned")
		}
	}

	return transaction.Commit(context)
}

// # Usage

/*
Usage aggregates, per card code, how many copies each deck claims.
Hero slots count as one copy each alongside main-deck quantities.
*/
func (repository *PostgresRepository) Usage(context context.Context, codes []string) (map[string][]DeckUsage, error) {
	query := fmt.Sprintf(`
		SELECT u.card_code, u.deck_id, d.%s, SUM(u.qty)::int
		FROM (
			SELECT %s AS card_code, %s AS deck_id, %s AS qty FROM %s
			UNION ALL
			SELECT %s AS card_code, %s AS deck_id, 1 AS qty FROM %s
		) u
		JOIN %s d ON u.deck_id = d.%s
		WHERE u.card_code = ANY($1)
		GROUP BY u.card_code, u.deck_id, d.%s
		ORDER BY d.%s ASC
	`,
		schema.Deck.Name,
		schema.DeckCard.CardCode, schema.DeckCard.DeckID, schema.DeckCard.Qty, schema.DeckCard.Table,
		schema.DeckHero.CardCode, schema.DeckHero.DeckID, schema.DeckHero.Table,
		schema.Deck.Table, schema.Deck.ID,
		schema.Deck.Name, schema.Deck.Name)

	rows, err := repository.db.Query(context, query, codes)
	if err != nil {
		return nil, dberr.Wrap(err, "card_usage")
	}
	defer rows.Close()

	usage := make(map[string][]DeckUsage)
	for rows.Next() {
		var code string
		entry := DeckUsage{}
		if err := rows.Scan(&code, &entry.DeckID, &entry.DeckName, &entry.Qty); err != nil {
			return nil, dberr.Wrap(err, "scan_card_usage")
		}
		usage[code] = append(usage[code], entry)
	}
	return usage, nil
}
