package deck

import "context"

type Repository interface {
	ListDecks(context context.Context) ([]*Deck, error)
	GetDeckByID(context context.Context, id string) (*Deck, error)
	CreateDeck(context context.Context, deck *Deck) error
	RenameDeck(context context.Context, id string, name string) (*Deck, error)
	DeleteDeck(context context.Context, id string) error

	SetHeroes(context context.Context, id string, codes []string) error
	UpsertCard(context context.Context, id string, code string, qty int) error
	ReplaceContents(context context.Context, id string, contents Contents) error
}
