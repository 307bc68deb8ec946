package main

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"dailyword/internal/dictionary"
	"dailyword/internal/puzzle"
	"dailyword/internal/types"

	"github.com/gin-gonic/gin"
)

// wordleWordHandler returns the solution for today (default) or a random past
// day, enriched with its meaning. Upstream failures degrade to FallbackWord.
func (app *App) wordleWordHandler(c *gin.Context) {
	ctx := c.Request.Context()
	useToday := parseTodayParam(c.DefaultQuery("today", "true"))

	word, err := app.Words.Resolve(ctx, useToday)
	app.Metrics.ObserveUpstream(ServicePuzzle, err)
	if err != nil {
		logWarn(withRequestID(ctx, "Puzzle lookup failed (today=%v), serving fallback %s: %v"), useToday, FallbackWord, err)
		c.JSON(http.StatusInternalServerError, FallbackWordResponse{
			Error:    err.Error(),
			Fallback: FallbackWord,
			Solution: FallbackWord,
			Date:     app.Words.Today().Format(puzzle.DateLayout),
			Timezone: TimezoneName,
			IsToday:  useToday,
			Meaning:  fallbackMeaning(),
		})
		return
	}
	logInfo(withRequestID(ctx, "Resolved solution for %s (today=%v)"), word.Date, word.IsToday)

	meaning := app.Meanings.Resolve(ctx, word.Solution)
	if meaning == nil {
		meaning = stubMeaning(word.Solution)
	}

	c.JSON(http.StatusOK, WordleWordResponse{
		Solution: word.Solution,
		Date:     word.Date,
		Timezone: TimezoneName,
		IsToday:  word.IsToday,
		Meaning:  meaning,
	})
}

// wordMeaningHandler looks up any 5-letter word.
func (app *App) wordMeaningHandler(c *gin.Context) {
	ctx := c.Request.Context()
	word := c.Param("word")

	if utf8.RuneCountInString(word) != WordLength {
		logWarn(withRequestID(ctx, "Rejected meaning lookup for %q (%d letters)"), word, utf8.RuneCountInString(word))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorInvalidLength})
		return
	}

	meaning := app.Meanings.Resolve(ctx, word)
	if meaning == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorMeaningNotFound,
			Word:  strings.ToUpper(word),
		})
		return
	}
	c.JSON(http.StatusOK, meaning)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"env":                app.envName(),
		"dictionary_sources": app.Meanings.Sources(),
		"uptime":             formatUptime(uptime),
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}

// fallbackMeaning is the canned definition served with FallbackWord.
func fallbackMeaning() *types.MeaningResult {
	return dictionary.DefaultFallback().Get(FallbackWord)
}

// stubMeaning is used when no dictionary source knows the solution.
func stubMeaning(word string) *types.MeaningResult {
	return &types.MeaningResult{
		Word: strings.ToUpper(word),
		Meanings: []types.Meaning{{
			PartOfSpeech: StubPartOfSpeech,
			Definition:   StubDefinition,
		}},
		Source: StubSource,
	}
}
