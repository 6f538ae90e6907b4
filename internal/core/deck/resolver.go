package deck

import (
	"context"

	"github.com/fellhollow/hearthdeck/internal/ringsdb"
	"github.com/fellhollow/hearthdeck/pkg/slice"
)

// ringsDBResolver resolves card codes through the card database source.
// Codes the upstream does not know are left out of the result, which the
// encoder treats as "omit the line".
type ringsDBResolver struct {
	source ringsdb.Source
}

func NewRingsDBResolver(source ringsdb.Source) CardResolver {
	return &ringsDBResolver{source: source}
}

func (resolver *ringsDBResolver) ResolveCards(context context.Context, codes []string) (map[string]CardMeta, error) {
	metas := make(map[string]CardMeta, len(codes))
	for _, code := range slice.Unique(codes) {
		card, err := resolver.source.Card(context, code)
		if err != nil {
			continue
		}
		metas[code] = CardMeta{Name: card.Name, TypeCode: card.TypeCode}
	}
	return metas, nil
}
