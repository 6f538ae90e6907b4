package deck

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CardMeta is the card metadata the encoder needs to print a line.
type CardMeta struct {
	Name     string
	TypeCode string
}

// CardResolver looks up display metadata for a set of card codes.
// Codes the resolver cannot identify are simply absent from the result.
type CardResolver interface {
	ResolveCards(context context.Context, codes []string) (map[string]CardMeta, error)
}

// bucketOrder fixes the section order of the exported text. Cards whose
// type is unknown or unrecognized land in "other".
var bucketOrder = []string{"ally", "attachment", "event", "player-side-quest", "contract", "treasure", "other"}

var (
	heroSectionPattern = regexp.MustCompile(`(?i)^heroes`)
	cardLinePattern    = regexp.MustCompile(`^(\d+)\s*x\s*([a-zA-Z0-9]+)\b`)
)

// Encode renders deck contents as the shareable multi-line text format.
// Cards the resolver does not know are omitted from the output.
func Encode(context context.Context, name string, contents Contents, resolver CardResolver) (string, error) {
	codes := make([]string, 0, len(contents.Heroes)+len(contents.Cards))
	codes = append(codes, contents.Heroes...)
	for code := range contents.Cards {
		codes = append(codes, code)
	}

	metas, err := resolver.ResolveCards(context, codes)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Deck: %s\n\n", name)

	heroLines := make([]string, 0, len(contents.Heroes))
	for _, code := range contents.Heroes {
		meta, ok := metas[code]
		if !ok {
			continue
		}
		heroLines = append(heroLines, fmt.Sprintf("1x %s %s", code, meta.Name))
	}
	fmt.Fprintf(&builder, "Heroes (%d):\n", len(heroLines))
	for _, line := range heroLines {
		builder.WriteString(line + "\n")
	}
	builder.WriteString("\n")

	type bucketEntry struct {
		code string
		qty  int
		name string
	}
	buckets := make(map[string][]bucketEntry)
	for code, qty := range contents.Cards {
		meta, ok := metas[code]
		if !ok {
			continue
		}
		bucket := meta.TypeCode
		if !isKnownBucket(bucket) {
			bucket = "other"
		}
		buckets[bucket] = append(buckets[bucket], bucketEntry{code: code, qty: qty, name: meta.Name})
	}

	collator := collate.New(language.English)
	for _, bucket := range bucketOrder {
		entries := buckets[bucket]
		if len(entries) == 0 {
			continue
		}

		sort.Slice(entries, func(i, j int) bool {
			return collator.CompareString(entries[i].name, entries[j].name) < 0
		})

		total := 0
		for _, entry := range entries {
			total += entry.qty
		}

		fmt.Fprintf(&builder, "%s (%d):\n", strings.ToUpper(bucket), total)
		for _, entry := range entries {
			fmt.Fprintf(&builder, "%dx %s %s\n", entry.qty, entry.code, entry.name)
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Decode parses a deck list text blob back into structured contents.
// Malformed input never produces an error: unrecognizable lines are
// skipped, and a blob with zero card lines yields empty contents, which
// the caller must treat as a failed import rather than an empty deck.
func Decode(text string) Contents {
	contents := Contents{
		Heroes: make([]string, 0, 3),
		Cards:  make(map[string]int),
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	insideHeroes := false
	for _, rawLine := range strings.Split(normalized, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if heroSectionPattern.MatchString(line) {
			insideHeroes = true
			continue
		}
		if strings.HasSuffix(line, "):") {
			insideHeroes = false
			continue
		}

		match := cardLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		qty, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		code := match[2]

		if insideHeroes {
			if len(contents.Heroes) < 3 && !containsCode(contents.Heroes, code) {
				contents.Heroes = append(contents.Heroes, code)
			}
			continue
		}

		if qty > 0 {
			contents.Cards[code] = qty
		}
	}

	// Heroes win: a code listed in the heroes section never doubles as
	// a main-deck card.
	for _, code := range contents.Heroes {
		delete(contents.Cards, code)
	}

	return contents
}

func isKnownBucket(typeCode string) bool {
	for _, bucket := range bucketOrder {
		if bucket == typeCode && bucket != "other" {
			return true
		}
	}
	return false
}

func containsCode(codes []string, code string) bool {
	for _, existing := range codes {
		if existing == code {
			return true
		}
	}
	return false
}
