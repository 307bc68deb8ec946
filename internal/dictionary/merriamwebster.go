package dictionary

import (
	"bytes"
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
	MerriamWebsterBaseURL = "https://www.dictionaryapi.com/api/v3/references"

	CollegiateReference = "collegiate"
	LearnersReference   = "learners"

	CollegiateSource = "Merriam-Webster Collegiate"
	LearnersSource   = "Merriam-Webster Learners"

	mwMaxDefinitions = 3
)

type mwEntry struct {
	FunctionalLabel string   `json:"fl"`
	ShortDefs       []string `json:"shortdef"`
	Headword        struct {
		Pronunciations []struct {
			MW string `json:"mw"`
		} `json:"prs"`
	} `json:"hwi"`
}

// MerriamWebster looks words up in one Merriam-Webster reference. The
// collegiate and learner's dictionaries share a response shape and differ
// only by reference name and API key.
type MerriamWebster struct {
	client    *resty.Client
	reference string
	source    string
	apiKey    string
	log       *slog.Logger
}

// NewMerriamWebster creates a provider for reference ("collegiate" or
// "learners") tagged with source.
func NewMerriamWebster(baseURL, reference, source, apiKey string, timeout time.Duration, logger *slog.Logger) *MerriamWebster {
	return &MerriamWebster{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout),
		reference: reference,
		source:    source,
		apiKey:    apiKey,
		log:       logger.With("adapter", "merriam-webster", "reference", reference),
	}
}

// NewCollegiate creates the Merriam-Webster Collegiate provider.
func NewCollegiate(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *MerriamWebster {
	return NewMerriamWebster(baseURL, CollegiateReference, CollegiateSource, apiKey, timeout, logger)
}

// NewLearners creates the Merriam-Webster Learner's provider.
func NewLearners(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *MerriamWebster {
	return NewMerriamWebster(baseURL, LearnersReference, LearnersSource, apiKey, timeout, logger)
}

func (p *MerriamWebster) Name() string { return p.source }

// Lookup fetches word. When the word is unknown the service answers with a
// list of spelling suggestions, which is reported as no result.
func (p *MerriamWebster) Lookup(ctx context.Context, word string) (*types.MeaningResult, error) {
	p.log.DebugContext(ctx, "merriam-webster request", slog.String("word", word))

	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"reference": p.reference,
			"word":      strings.ToLower(word),
		}).
		SetQueryParam("key", p.apiKey).
		Get("/{reference}/json/{word}")
	if err != nil {
		return nil, fmt.Errorf("merriam-webster %s: request failed: %w", p.reference, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("merriam-webster %s: unexpected status %d", p.reference, res.StatusCode())
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(res.Body(), &raw); err != nil {
		return nil, fmt.Errorf("merriam-webster %s: decode json: %w", p.reference, err)
	}
	if len(raw) == 0 || !bytes.HasPrefix(bytes.TrimSpace(raw[0]), []byte("{")) {
		return nil, nil
	}

	var entry mwEntry
	if err := json.Unmarshal(raw[0], &entry); err != nil {
		return nil, fmt.Errorf("merriam-webster %s: decode entry: %w", p.reference, err)
	}
	return p.mapEntry(word, entry), nil
}

func (p *MerriamWebster) mapEntry(word string, entry mwEntry) *types.MeaningResult {
	pos := entry.FunctionalLabel
	if pos == "" {
		pos = "unknown"
	}

	var meanings []types.Meaning
	for i, def := range entry.ShortDefs {
		if i >= mwMaxDefinitions {
			break
		}
		meanings = append(meanings, types.Meaning{
			PartOfSpeech: pos,
			Definition:   def,
		})
	}
	if len(meanings) == 0 {
		return nil
	}

	var phonetic string
	if prs := entry.Headword.Pronunciations; len(prs) > 0 && prs[0].MW != "" {
		phonetic = "/" + prs[0].MW + "/"
	}

	return &types.MeaningResult{
		Word:     strings.ToUpper(word),
		Phonetic: phonetic,
		Meanings: meanings,
		Source:   p.source,
	}
}
