package deck_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/core/deck"
	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
)

type fakeDeckRepo struct {
	decks map[string]*deck.Deck
}

func newFakeDeckRepo() *fakeDeckRepo {
	return &fakeDeckRepo{decks: make(map[string]*deck.Deck)}
}

func (repo *fakeDeckRepo) ListDecks(_ context.Context) ([]*deck.Deck, error) {
	decks := make([]*deck.Deck, 0, len(repo.decks))
	for _, d := range repo.decks {
		decks = append(decks, d)
	}
	return decks, nil
}

func (repo *fakeDeckRepo) GetDeckByID(_ context.Context, id string) (*deck.Deck, error) {
	d, ok := repo.decks[id]
	if !ok {
		return nil, apperr.NotFound("Deck")
	}
	copied := *d
	return &copied, nil
}

func (repo *fakeDeckRepo) CreateDeck(_ context.Context, d *deck.Deck) error {
	repo.decks[d.ID] = d
	return nil
}

func (repo *fakeDeckRepo) RenameDeck(_ context.Context, id string, name string) (*deck.Deck, error) {
	d, ok := repo.decks[id]
	if !ok {
		return nil, apperr.NotFound("Deck")
	}
	d.Name = name
	return d, nil
}

func (repo *fakeDeckRepo) DeleteDeck(_ context.Context, id string) error {
	if _, ok := repo.decks[id]; !ok {
		return apperr.NotFound("Deck")
	}
	delete(repo.decks, id)
	return nil
}

func (repo *fakeDeckRepo) SetHeroes(_ context.Context, id string, codes []string) error {
	d, ok := repo.decks[id]
	if !ok {
		return apperr.NotFound("Deck")
	}
	d.Heroes = codes
	return nil
}

func (repo *fakeDeckRepo) UpsertCard(_ context.Context, id string, code string, qty int) error {
	d, ok := repo.decks[id]
	if !ok {
		return apperr.NotFound("Deck")
	}
	for i, entry := range d.Cards {
		if entry.CardCode == code {
			if qty <= 0 {
				d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			} else {
				d.Cards[i].Qty = qty
			}
			return nil
		}
	}
	if qty > 0 {
		d.Cards = append(d.Cards, deck.CardEntry{CardCode: code, Qty: qty})
	}
	return nil
}

func (repo *fakeDeckRepo) ReplaceContents(_ context.Context, id string, contents deck.Contents) error {
	d, ok := repo.decks[id]
	if !ok {
		return apperr.NotFound("Deck")
	}
	d.Heroes = contents.Heroes
	d.Cards = make([]deck.CardEntry, 0, len(contents.Cards))
	for code, qty := range contents.Cards {
		d.Cards = append(d.Cards, deck.CardEntry{CardCode: code, Qty: qty})
	}
	return nil
}

func newDeckService(repo deck.Repository, resolver deck.CardResolver) *deck.Service {
	return deck.NewService(repo, resolver, slog.Default())
}

/*
TestService_CreateDeck_DefaultName falls back to the default deck name
when none is supplied.
*/
func TestService_CreateDeck_DefaultName(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})

	created, err := service.CreateDeck(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, deck.DefaultDeckName, created.Name)
	assert.NotEmpty(t, created.ID)
}

/*
TestService_RenameDeck_RequiresName rejects a blank rename before
touching the store.
*/
func TestService_RenameDeck_RequiresName(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Dwarves")
	require.NoError(t, err)

	_, err = service.RenameDeck(context.Background(), created.ID, "   ")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_SetHeroes enforces the one-to-three hero window and
deduplicates repeated codes.
*/
func TestService_SetHeroes(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Rohan")
	require.NoError(t, err)

	err = service.SetHeroes(context.Background(), created.ID, []string{})
	require.Error(t, err)

	err = service.SetHeroes(context.Background(), created.ID, []string{"H1", "H2", "H3", "H4"})
	require.Error(t, err)

	err = service.SetHeroes(context.Background(), created.ID, []string{"H1", "H1", "H2"})
	require.NoError(t, err)

	stored, err := service.GetDeck(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"H1", "H2"}, stored.Heroes)
}

/*
TestService_SetCardQty rejects negative quantities and removes a card at
quantity zero.
*/
func TestService_SetCardQty(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Gondor")
	require.NoError(t, err)

	err = service.SetCardQty(context.Background(), created.ID, "01050", -1)
	require.Error(t, err)

	require.NoError(t, service.SetCardQty(context.Background(), created.ID, "01050", 3))
	require.NoError(t, service.SetCardQty(context.Background(), created.ID, "01050", 0))

	stored, err := service.GetDeck(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Cards)
}

/*
TestService_Replace strips hero codes out of the card pool and drops
non-positive quantities.
*/
func TestService_Replace(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Mixed")
	require.NoError(t, err)

	err = service.Replace(context.Background(), created.ID,
		[]string{"H1", "H2"},
		[]deck.CardEntry{
			{CardCode: "H1", Qty: 3},
			{CardCode: "A1", Qty: 2},
			{CardCode: "B1", Qty: 0},
		})
	require.NoError(t, err)

	stored, err := service.GetDeck(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"H1", "H2"}, stored.Heroes)
	require.Len(t, stored.Cards, 1)
	assert.Equal(t, "A1", stored.Cards[0].CardCode)
	assert.Equal(t, 2, stored.Cards[0].Qty)
}

/*
TestService_Import_NoCardLines surfaces an unprocessable error instead
of wiping the deck when the pasted text contains nothing recognizable.
*/
func TestService_Import_NoCardLines(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Keeper")
	require.NoError(t, err)
	require.NoError(t, service.SetCardQty(context.Background(), created.ID, "01050", 2))

	_, err = service.Import(context.Background(), created.ID, "not a deck list at all")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNPROCESSABLE", ae.Code)

	stored, err := service.GetDeck(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Cards, 1)
}

/*
TestService_Import_ReplacesDeck applies a decoded list as a full
replacement of heroes and cards.
*/
func TestService_Import_ReplacesDeck(t *testing.T) {
	repo := newFakeDeckRepo()
	service := newDeckService(repo, staticResolver{})
	created, err := service.CreateDeck(context.Background(), "Old Guard")
	require.NoError(t, err)
	require.NoError(t, service.SetHeroes(context.Background(), created.ID, []string{"OLD1"}))
	require.NoError(t, service.SetCardQty(context.Background(), created.ID, "OLD2", 3))

	imported, err := service.Import(context.Background(), created.ID,
		"Heroes (1):\n1x H9 Beorn\n\nALLY (2):\n2x A9 Faramir\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"H9"}, imported.Heroes)
	require.Len(t, imported.Cards, 1)
	assert.Equal(t, "A9", imported.Cards[0].CardCode)
	assert.Equal(t, 2, imported.Cards[0].Qty)
}

/*
TestService_Export renders the stored deck through the resolver.
*/
func TestService_Export(t *testing.T) {
	repo := newFakeDeckRepo()
	resolver := staticResolver{
		"H1": {Name: "Aragorn", TypeCode: "hero"},
		"A1": {Name: "Gandalf", TypeCode: "ally"},
	}
	service := newDeckService(repo, resolver)
	created, err := service.CreateDeck(context.Background(), "Fellowship")
	require.NoError(t, err)
	require.NoError(t, service.SetHeroes(context.Background(), created.ID, []string{"H1"}))
	require.NoError(t, service.SetCardQty(context.Background(), created.ID, "A1", 2))

	text, err := service.Export(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Contains(t, text, "Deck: Fellowship")
	assert.Contains(t, text, "1x H1 Aragorn")
	assert.Contains(t, text, "ALLY (2):")
	assert.Contains(t, text, "2x A1 Gandalf")
}
