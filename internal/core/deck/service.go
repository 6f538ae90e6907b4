package deck

import (
	"context"
	"log/slog"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/platform/validate"
	"github.com/fellhollow/hearthdeck/pkg/slice"
	"github.com/fellhollow/hearthdeck/pkg/uuidv7"
)

// DefaultDeckName is used when a deck is created without a name.
const DefaultDeckName = "New Deck"

const maxDeckNameLength = 120

type Service struct {
	repo     Repository
	resolver CardResolver
	logger   *slog.Logger
}

func NewService(repo Repository, resolver CardResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

func (service *Service) ListDecks(context context.Context) ([]*Deck, error) {
	return service.repo.ListDecks(context)
}

func (service *Service) GetDeck(context context.Context, id string) (*Deck, error) {
	return service.repo.GetDeckByID(context, id)
}

// CreateDeck starts a new empty deck. A blank name falls back to the
// default so the household can name it once cards are in.
func (service *Service) CreateDeck(context context.Context, name string) (*Deck, error) {
	if name == "" {
		name = DefaultDeckName
	}

	v := &validate.Validator{}
	v.MaxLen("name", name, maxDeckNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	deck := &Deck{
		ID:     uuidv7.New(),
		Name:   name,
		Heroes: make([]string, 0, 3),
		Cards:  make([]CardEntry, 0),
	}
	if err := service.repo.CreateDeck(context, deck); err != nil {
		return nil, err
	}

	service.logger.Info("deck created", "deck_id", deck.ID, "name", deck.Name)
	return deck, nil
}

func (service *Service) RenameDeck(context context.Context, id string, name string) (*Deck, error) {
	v := &validate.Validator{}
	v.Required("name", name)
	v.MaxLen("name", name, maxDeckNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.RenameDeck(context, id, name)
}

func (service *Service) DeleteDeck(context context.Context, id string) error {
	if err := service.repo.DeleteDeck(context, id); err != nil {
		return err
	}
	service.logger.Info("deck deleted", "deck_id", id)
	return nil
}

// SetHeroes replaces the hero lineup. One to three unique codes.
func (service *Service) SetHeroes(context context.Context, id string, codes []string) error {
	codes = slice.Unique(codes)

	v := &validate.Validator{}
	v.Custom("heroes", len(codes) == 0, "At least one hero is required")
	v.Custom("heroes", len(codes) > 3, "A deck holds at most 3 heroes")
	for _, code := range codes {
		v.CardCode("heroes", code)
	}
	if err := v.Err(); err != nil {
		return err
	}

	return service.repo.SetHeroes(context, id, codes)
}

// SetCardQty records the copy count for one main-deck card. Quantity
// zero removes the card.
func (service *Service) SetCardQty(context context.Context, id string, code string, qty int) error {
	v := &validate.Validator{}
	v.CardCode("card_code", code)
	v.Custom("qty", qty < 0, "Quantity cannot be negative")
	if err := v.Err(); err != nil {
		return err
	}

	return service.repo.UpsertCard(context, id, code, qty)
}

// Replace swaps the whole deck for the given heroes and cards in one
// shot. Hero codes are deduplicated and stripped from the card pool;
// non-positive quantities are dropped.
func (service *Service) Replace(context context.Context, id string, heroes []string, cards []CardEntry) error {
	heroes = slice.Unique(heroes)

	v := &validate.Validator{}
	v.Custom("heroes", len(heroes) > 3, "A deck holds at most 3 heroes")
	for _, code := range heroes {
		v.CardCode("heroes", code)
	}
	for _, entry := range cards {
		v.CardCode("cards", entry.CardCode)
	}
	if err := v.Err(); err != nil {
		return err
	}

	contents := Contents{Heroes: heroes, Cards: make(map[string]int, len(cards))}
	for _, entry := range cards {
		if entry.Qty > 0 {
			contents.Cards[entry.CardCode] = entry.Qty
		}
	}
	for _, code := range heroes {
		delete(contents.Cards, code)
	}

	return service.repo.ReplaceContents(context, id, contents)
}

// Import decodes a pasted deck list and replaces the deck with it.
// Text with no recognizable card lines fails instead of silently
// wiping the deck.
func (service *Service) Import(context context.Context, id string, text string) (*Deck, error) {
	contents := Decode(text)
	if contents.IsEmpty() {
		return nil, apperr.Unprocessable("No card lines found in import text")
	}

	if err := service.repo.ReplaceContents(context, id, contents); err != nil {
		return nil, err
	}

	service.logger.Info("deck imported", "deck_id", id,
		"heroes", len(contents.Heroes), "cards", len(contents.Cards))

	return service.repo.GetDeckByID(context, id)
}

// Export renders the deck as shareable text with card names resolved
// from the card database.
func (service *Service) Export(context context.Context, id string) (string, error) {
	deck, err := service.repo.GetDeckByID(context, id)
	if err != nil {
		return "", err
	}

	contents := Contents{Heroes: deck.Heroes, Cards: make(map[string]int, len(deck.Cards))}
	for _, entry := range deck.Cards {
		contents.Cards[entry.CardCode] = entry.Qty
	}

	return Encode(context, deck.Name, contents, service.resolver)
}
