package collection

import (
	"context"
	"log/slog"

	"github.com/fellhollow/hearthdeck/internal/platform/validate"
	"github.com/fellhollow/hearthdeck/internal/ringsdb"
)

// defaultEnabledPacks are switched on the first time they appear in the
// catalog, covering the boxes the household already owns. Everything
// else starts disabled until someone toggles it.
var defaultEnabledPacks = map[string]bool{
	"Core": true,
	"DoG":  true,
	"DoD":  true,
	"EoL":  true,
	"RoR":  true,
	"TBR":  true,
	"TRD":  true,
}

type Service struct {
	repo   Repository
	cards  ringsdb.Source
	logger *slog.Logger
}

func NewService(repo Repository, cards ringsdb.Source, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cards:  cards,
		logger: logger,
	}
}

// # Packs

// ListPacks refreshes the local pack table from the card database
// catalog and returns it. A failed catalog fetch falls back to whatever
// is already stored so the collection page keeps working offline.
func (service *Service) ListPacks(context context.Context) ([]*Pack, error) {
	catalog, err := service.cards.Packs(context)
	if err != nil {
		service.logger.Warn("pack catalog fetch failed, serving stored packs", "error", err)
		return service.repo.ListPacks(context)
	}

	packs := make([]Pack, 0, len(catalog))
	for _, pack := range catalog {
		if pack.Code == "" {
			continue
		}
		packs = append(packs, Pack{PackCode: pack.Code, PackName: pack.Name})
	}

	if err := service.repo.SyncPacks(context, packs, defaultEnabledPacks); err != nil {
		return nil, err
	}

	return service.repo.ListPacks(context)
}

func (service *Service) SetPackEnabled(context context.Context, packCode string, enabled bool) (*Pack, error) {
	v := &validate.Validator{}
	v.Required("pack_code", packCode)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.SetPackEnabled(context, packCode, enabled)
}

// PackCards lists the player cards of one pack, for the collection
// checklist view.
func (service *Service) PackCards(context context.Context, packCode string) ([]ringsdb.Card, error) {
	v := &validate.Validator{}
	v.Required("pack_code", packCode)
	if err := v.Err(); err != nil {
		return nil, err
	}

	cards, err := service.cards.CardsByPack(context, packCode)
	if err != nil {
		return nil, err
	}
	return ringsdb.FilterPlayerCards(cards), nil
}

// # Owned Quantities

func (service *Service) Owned(context context.Context, codes []string) (map[string]int, error) {
	return service.repo.GetOwned(context, codes)
}

// SetOwned records the owned copy count for a card. Negative input is
// clamped to zero; zero itself is stored as an explicit "none owned".
func (service *Service) SetOwned(context context.Context, code string, qty int) error {
	v := &validate.Validator{}
	v.CardCode("card_code", code)
	if err := v.Err(); err != nil {
		return err
	}

	if qty < 0 {
		qty = 0
	}
	return service.repo.UpsertOwned(context, code, qty)
}

func (service *Service) BulkSetOwned(context context.Context, cards []OwnedCard) error {
	v := &validate.Validator{}
	v.Custom("cards", len(cards) == 0, "At least one card is required")
	for _, card := range cards {
		v.CardCode("cards", card.CardCode)
	}
	if err := v.Err(); err != nil {
		return err
	}

	clamped := make([]OwnedCard, 0, len(cards))
	for _, card := range cards {
		if card.OwnedQty < 0 {
			card.OwnedQty = 0
		}
		clamped = append(clamped, card)
	}

	return service.repo.BulkUpsertOwned(context, clamped)
}

// # Usage

// Usage reports which decks claim copies of the given cards.
func (service *Service) Usage(context context.Context, codes []string) (map[string][]DeckUsage, error) {
	v := &validate.Validator{}
	v.Custom("code", len(codes) == 0, "At least one card code is required")
	for _, code := range codes {
		v.CardCode("code", code)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.Usage(context, codes)
}
