package collection_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/core/collection"
	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/ringsdb"
)

type fakeCollectionRepo struct {
	packs map[string]*collection.Pack
	owned map[string]int
	usage map[string][]collection.DeckUsage
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{
		packs: make(map[string]*collection.Pack),
		owned: make(map[string]int),
		usage: make(map[string][]collection.DeckUsage),
	}
}

func (repo *fakeCollectionRepo) ListPacks(_ context.Context) ([]*collection.Pack, error) {
	packs := make([]*collection.Pack, 0, len(repo.packs))
	for _, pack := range repo.packs {
		packs = append(packs, pack)
	}
	return packs, nil
}

func (repo *fakeCollectionRepo) SyncPacks(_ context.Context, packs []collection.Pack, defaultEnabled map[string]bool) error {
	for _, pack := range packs {
		if existing, ok := repo.packs[pack.PackCode]; ok {
			existing.PackName = pack.PackName
			continue
		}
		repo.packs[pack.PackCode] = &collection.Pack{
			PackCode: pack.PackCode,
			PackName: pack.PackName,
			Enabled:  defaultEnabled[pack.PackCode],
		}
	}
	return nil
}

func (repo *fakeCollectionRepo) SetPackEnabled(_ context.Context, packCode string, enabled bool) (*collection.Pack, error) {
	pack, ok := repo.packs[packCode]
	if !ok {
		return nil, apperr.NotFound("Pack")
	}
	pack.Enabled = enabled
	return pack, nil
}

func (repo *fakeCollectionRepo) GetOwned(_ context.Context, codes []string) (map[string]int, error) {
	if len(codes) == 0 {
		return repo.owned, nil
	}
	owned := make(map[string]int)
	for _, code := range codes {
		if qty, ok := repo.owned[code]; ok {
			owned[code] = qty
		}
	}
	return owned, nil
}

func (repo *fakeCollectionRepo) UpsertOwned(_ context.Context, code string, qty int) error {
	repo.owned[code] = qty
	return nil
}

func (repo *fakeCollectionRepo) BulkUpsertOwned(_ context.Context, cards []collection.OwnedCard) error {
	for _, card := range cards {
		repo.owned[card.CardCode] = card.OwnedQty
	}
	return nil
}

func (repo *fakeCollectionRepo) Usage(_ context.Context, codes []string) (map[string][]collection.DeckUsage, error) {
	usage := make(map[string][]collection.DeckUsage)
	for _, code := range codes {
		if entries, ok := repo.usage[code]; ok {
			usage[code] = entries
		}
	}
	return usage, nil
}

type fakeCardSource struct {
	packs    []ringsdb.Pack
	packsErr error
	cards    map[string][]ringsdb.Card
}

func (source *fakeCardSource) Packs(_ context.Context) ([]ringsdb.Pack, error) {
	return source.packs, source.packsErr
}

func (source *fakeCardSource) CardsByPack(_ context.Context, packCode string) ([]ringsdb.Card, error) {
	return source.cards[packCode], nil
}

func (source *fakeCardSource) Card(_ context.Context, code string) (*ringsdb.Card, error) {
	return nil, apperr.NotFound("card data")
}

/*
TestService_ListPacks_SyncsDefaults inserts new catalog packs with the
household's default enablement and keeps manual toggles on re-sync.
*/
func TestService_ListPacks_SyncsDefaults(t *testing.T) {
	repo := newFakeCollectionRepo()
	source := &fakeCardSource{packs: []ringsdb.Pack{
		{Code: "Core", Name: "Core Set"},
		{Code: "TWitW", Name: "The Wilds of Rhovanion"},
	}}
	service := collection.NewService(repo, source, slog.Default())

	packs, err := service.ListPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 2)

	byCode := map[string]*collection.Pack{}
	for _, pack := range packs {
		byCode[pack.PackCode] = pack
	}
	assert.True(t, byCode["Core"].Enabled)
	assert.False(t, byCode["TWitW"].Enabled)

	// A manual toggle survives the next catalog sync.
	_, err = service.SetPackEnabled(context.Background(), "TWitW", true)
	require.NoError(t, err)

	packs, err = service.ListPacks(context.Background())
	require.NoError(t, err)
	for _, pack := range packs {
		if pack.PackCode == "TWitW" {
			assert.True(t, pack.Enabled)
		}
	}
}

/*
TestService_ListPacks_CatalogDown serves the stored pack table when the
card database is unreachable.
*/
func TestService_ListPacks_CatalogDown(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.packs["Core"] = &collection.Pack{PackCode: "Core", PackName: "Core Set", Enabled: true}
	source := &fakeCardSource{packsErr: errors.New("connection refused")}
	service := collection.NewService(repo, source, slog.Default())

	packs, err := service.ListPacks(context.Background())

	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "Core", packs[0].PackCode)
}

/*
TestService_SetOwned_ClampsNegative stores zero for negative input and
keeps zero as an explicit value.
*/
func TestService_SetOwned_ClampsNegative(t *testing.T) {
	repo := newFakeCollectionRepo()
	service := collection.NewService(repo, &fakeCardSource{}, slog.Default())

	require.NoError(t, service.SetOwned(context.Background(), "01050", -2))

	owned, err := service.Owned(context.Background(), []string{"01050"})
	require.NoError(t, err)
	qty, ok := owned["01050"]
	require.True(t, ok)
	assert.Equal(t, 0, qty)
}

/*
TestService_BulkSetOwned validates the batch and clamps each entry.
*/
func TestService_BulkSetOwned(t *testing.T) {
	repo := newFakeCollectionRepo()
	service := collection.NewService(repo, &fakeCardSource{}, slog.Default())

	err := service.BulkSetOwned(context.Background(), nil)
	require.Error(t, err)

	err = service.BulkSetOwned(context.Background(), []collection.OwnedCard{
		{CardCode: "01050", OwnedQty: 3},
		{CardCode: "01051", OwnedQty: -1},
	})
	require.NoError(t, err)

	owned, err := service.Owned(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, owned["01050"])
	assert.Equal(t, 0, owned["01051"])
}

/*
TestService_Usage_RequiresCodes rejects an empty code list.
*/
func TestService_Usage_RequiresCodes(t *testing.T) {
	repo := newFakeCollectionRepo()
	service := collection.NewService(repo, &fakeCardSource{}, slog.Default())

	_, err := service.Usage(context.Background(), nil)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_PackCards filters encounter cards out of the pack listing.
*/
func TestService_PackCards(t *testing.T) {
	repo := newFakeCollectionRepo()
	source := &fakeCardSource{cards: map[string][]ringsdb.Card{
		"Core": {
			{Code: "01001", TypeCode: "hero"},
			{Code: "01050", TypeCode: "ally"},
			{Code: "01120", TypeCode: "enemy"},
		},
	}}
	service := collection.NewService(repo, source, slog.Default())

	cards, err := service.PackCards(context.Background(), "Core")

	require.NoError(t, err)
	require.Len(t, cards, 2)
}
