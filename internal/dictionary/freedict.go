package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dailyword/internal/types"

	"github.com/go-resty/resty/v2"
)

const (
	FreeDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	FreeDictionarySource  = "Free Dictionary API"

	freeDictMaxGroups      = 3
	freeDictMaxDefinitions = 5
)

type freeDictEntry struct {
	Word      string             `json:"word"`
	Phonetics []freeDictPhonetic `json:"phonetics"`
	Meanings  []freeDictMeaning  `json:"meanings"`
}

type freeDictPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// FreeDictionary looks words up in the keyless dictionaryapi.dev service.
type FreeDictionary struct {
	client *resty.Client
	log    *slog.Logger
}

// NewFreeDictionary creates a FreeDictionary provider against baseURL.
func NewFreeDictionary(baseURL string, timeout time.Duration, logger *slog.Logger) *FreeDictionary {
	return &FreeDictionary{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout),
		log: logger.With("adapter", "freedict"),
	}
}

func (p *FreeDictionary) Name() string { return FreeDictionarySource }

// Lookup fetches word and maps the first entry. A 404 is reported as no result.
func (p *FreeDictionary) Lookup(ctx context.Context, word string) (*types.MeaningResult, error) {
	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	res, err := p.client.R().
		SetContext(ctx).
		SetPathParam("word", strings.ToLower(word)).
		Get("/{word}")
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", res.StatusCode())
	}

	var entries []freeDictEntry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return mapFreeDictEntry(word, entries[0]), nil
}

// mapFreeDictEntry takes up to three part-of-speech groups with up to five
// definitions each, and the first non-empty phonetic text.
func mapFreeDictEntry(word string, entry freeDictEntry) *types.MeaningResult {
	var meanings []types.Meaning
	for i, group := range entry.Meanings {
		if i >= freeDictMaxGroups {
			break
		}
		for j, def := range group.Definitions {
			if j >= freeDictMaxDefinitions {
				break
			}
			if def.Definition == "" {
				continue
			}
			meanings = append(meanings, types.Meaning{
				PartOfSpeech: group.PartOfSpeech,
				Definition:   def.Definition,
				Example:      def.Example,
			})
		}
	}

	var phonetic string
	for _, ph := range entry.Phonetics {
		if ph.Text != "" {
			phonetic = ph.Text
			break
		}
	}

	return &types.MeaningResult{
		Word:     strings.ToUpper(word),
		Phonetic: phonetic,
		Meanings: meanings,
		Source:   FreeDictionarySource,
	}
}
