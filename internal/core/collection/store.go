package collection

import "context"

type Repository interface {
	ListPacks(context context.Context) ([]*Pack, error)
	SyncPacks(context context.Context, packs []Pack, defaultEnabled map[string]bool) error
	SetPackEnabled(context context.Context, packCode string, enabled bool) (*Pack, error)

	GetOwned(context context.Context, codes []string) (map[string]int, error)
	UpsertOwned(context context.Context, code string, qty int) error
	BulkUpsertOwned(context context.Context, cards []OwnedCard) error

	Usage(context context.Context, codes []string) (map[string][]DeckUsage, error)
}
