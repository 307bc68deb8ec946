package dictionary

import (
	"context"
	"strings"

	"dailyword/internal/types"

	"github.com/samber/lo"
)

const (
	FallbackSource = "Fallback Dictionary"
	BuiltinSource  = "Built-in Dictionary"

	// TableName is the provider name of the built-in table. Entries keep
	// their own FallbackSource or BuiltinSource tag.
	TableName = "Built-in Table"
)

type fallbackEntry struct {
	word         string
	phonetic     string
	partOfSpeech string
	definition   string
	example      string
	source       string
}

var fallbackEntries = []fallbackEntry{
	{"react", "/riˈækt/", "verb", "respond or behave in a particular way as a result of or in response to something", "He reacted angrily to the news", FallbackSource},
	{"words", "/wɜrdz/", "noun", "a single distinct meaningful element of speech or writing", "He wrote down the words on paper", FallbackSource},
	{"build", "/bɪld/", "verb", "construct something by putting parts or material together", "They are going to build a new house", FallbackSource},
	{"game", "/ɡeɪm/", "noun", "a form of play or sport with rules", "Let us play a game of chess", BuiltinSource},
	{"daily", "/ˈdeɪli/", "adjective", "done, produced, or occurring every day", "Her daily routine includes morning exercise", BuiltinSource},
	{"about", "/əˈbaʊt/", "preposition", "on the subject of; concerning", "We talked about the weather", BuiltinSource},
	{"first", "/fɜrst/", "adjective", "coming before all others in time or order", "This is my first attempt", BuiltinSource},
	{"other", "/ˈʌðər/", "adjective", "used to refer to a person or thing that is different", "The other team won the game", BuiltinSource},
}

// FallbackTable is the built-in last-resort dictionary. It is read-only
// after construction.
type FallbackTable struct {
	entries map[string]types.MeaningResult
}

var defaultFallback = newFallbackTable(fallbackEntries)

// DefaultFallback returns the process-wide built-in table.
func DefaultFallback() *FallbackTable {
	return defaultFallback
}

func newFallbackTable(entries []fallbackEntry) *FallbackTable {
	return &FallbackTable{
		entries: lo.SliceToMap(entries, func(e fallbackEntry) (string, types.MeaningResult) {
			return e.word, types.MeaningResult{
				Word:     strings.ToUpper(e.word),
				Phonetic: e.phonetic,
				Meanings: []types.Meaning{{
					PartOfSpeech: e.partOfSpeech,
					Definition:   e.definition,
					Example:      e.example,
				}},
				Source: e.source,
			}
		}),
	}
}

// Name returns TableName.
func (t *FallbackTable) Name() string { return TableName }

// Lookup never fails; it returns a copy of the entry so the table stays intact.
func (t *FallbackTable) Lookup(_ context.Context, word string) (*types.MeaningResult, error) {
	return t.Get(word), nil
}

// Get returns a copy of the entry for word (case-insensitive), or nil.
func (t *FallbackTable) Get(word string) *types.MeaningResult {
	entry, ok := t.entries[strings.ToLower(word)]
	if !ok {
		return nil
	}
	return entry.Clone()
}

// Len returns the number of built-in words.
func (t *FallbackTable) Len() int {
	return len(t.entries)
}
