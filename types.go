package main

import (
	"context"
	"time"

	"dailyword/internal/types"
)

// WordResolver resolves the puzzle solution for today or a past day.
type WordResolver interface {
	Resolve(ctx context.Context, useToday bool) (types.DailyWord, error)
	Today() time.Time
}

// MeaningResolver looks up a word across the dictionary chain.
type MeaningResolver interface {
	Resolve(ctx context.Context, word string) *types.MeaningResult
	Sources() []string
}

// WordleWordResponse is the success payload of /wordle-word
type WordleWordResponse struct {
	Solution string               `json:"solution"`
	Date     string               `json:"date"`
	Timezone string               `json:"timezone"`
	IsToday  bool                 `json:"is_today"`
	Meaning  *types.MeaningResult `json:"meaning"`
}

// FallbackWordResponse is returned with HTTP 500 when the puzzle service fails,
// so clients always have a displayable word.
type FallbackWordResponse struct {
	Error    string               `json:"error"`
	Fallback string               `json:"fallback"`
	Solution string               `json:"solution"`
	Date     string               `json:"date"`
	Timezone string               `json:"timezone"`
	IsToday  bool                 `json:"is_today"`
	Meaning  *types.MeaningResult `json:"meaning"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Word  string `json:"word,omitempty"`
}
