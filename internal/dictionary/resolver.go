package dictionary

import (
	"context"
	"log/slog"
	"strings"

	"dailyword/internal/types"

	"github.com/samber/lo"
)

// MaxMeanings caps the number of meanings in any returned result.
const MaxMeanings = 3

// Provider is a single meaning source. Lookup returns (nil, nil) when the
// source has nothing for the word.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, word string) (*types.MeaningResult, error)
}

// Translator attaches a translation to remote results. It must not fail.
type Translator interface {
	Translate(ctx context.Context, word string) string
}

// Resolver walks an ordered provider chain and returns the first usable result.
type Resolver struct {
	providers  []Provider
	translator Translator
	log        *slog.Logger
	observe    func(source string)
	onLookup   func(source string, err error)
}

// NewResolver builds a Resolver over providers in lookup order. translator may be nil.
func NewResolver(translator Translator, logger *slog.Logger, providers ...Provider) *Resolver {
	return &Resolver{
		providers:  providers,
		translator: translator,
		log:        logger.With("component", "dictionary"),
	}
}

// OnResolved registers fn to be called with the winning source name, or
// "none" when every provider came up empty.
func (r *Resolver) OnResolved(fn func(source string)) {
	r.observe = fn
}

// OnLookup registers fn to be called after every remote provider lookup with
// the provider name and its error, if any. The built-in table is not reported.
func (r *Resolver) OnLookup(fn func(source string, err error)) {
	r.onLookup = fn
}

// Sources lists the provider names in lookup order.
func (r *Resolver) Sources() []string {
	return lo.Map(r.providers, func(p Provider, _ int) string {
		return p.Name()
	})
}

// Resolve returns the meaning of word from the first provider that has one,
// or nil when none does. Provider errors are logged and skipped.
func (r *Resolver) Resolve(ctx context.Context, word string) *types.MeaningResult {
	for _, p := range r.providers {
		_, static := p.(*FallbackTable)
		result, err := p.Lookup(ctx, word)
		if !static && r.onLookup != nil {
			r.onLookup(p.Name(), err)
		}
		if err != nil {
			r.log.WarnContext(ctx, "meaning source failed",
				slog.String("source", p.Name()),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}
		if result == nil {
			continue
		}

		result.Meanings = lo.Filter(result.Meanings, func(m types.Meaning, _ int) bool {
			return strings.TrimSpace(m.Definition) != ""
		})
		if len(result.Meanings) == 0 {
			continue
		}
		result.Meanings = lo.Slice(result.Meanings, 0, MaxMeanings)
		result.Word = strings.ToUpper(word)

		if !static && r.translator != nil {
			result.HindiTranslation = r.translator.Translate(ctx, word)
		}

		r.log.DebugContext(ctx, "meaning resolved", slog.String("source", p.Name()), slog.String("word", word))
		r.notify(result.Source)
		return result
	}

	r.log.InfoContext(ctx, "no meaning found", slog.String("word", word))
	r.notify("none")
	return nil
}

func (r *Resolver) notify(source string) {
	if r.observe != nil {
		r.observe(source)
	}
}
