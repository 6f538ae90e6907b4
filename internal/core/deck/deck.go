package deck

import "time"

// Deck is a named player deck: up to three heroes plus a main pool of
// cards with quantities.
type Deck struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Heroes []string    `json:"heroes"`
	Cards  []CardEntry `json:"cards"`
}

// CardEntry is one main-deck card with its copy count.
type CardEntry struct {
	CardCode string `json:"card_code"`
	Qty      int    `json:"qty"`
}

// Contents is the structured form a deck list text encodes and decodes.
// Invariants: Heroes holds at most 3 unique codes; Cards maps card code
// to a positive quantity; no code appears in both.
type Contents struct {
	Heroes []string
	Cards  map[string]int
}

// IsEmpty reports whether the contents carry no heroes and no cards.
func (contents Contents) IsEmpty() bool {
	return len(contents.Heroes) == 0 && len(contents.Cards) == 0
}
