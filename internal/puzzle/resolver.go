package puzzle

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"time"

	"dailyword/internal/types"

	"github.com/go-resty/resty/v2"
)

// DateLayout is the calendar date format used in upstream URLs and responses.
const DateLayout = "2006-01-02"

var (
	ErrUpstream          = errors.New("puzzle: upstream request failed")
	ErrUpstreamStatus    = errors.New("puzzle: unexpected upstream status")
	ErrMalformedResponse = errors.New("puzzle: malformed upstream response")
)

type puzzleResponse struct {
	Solution string `json:"solution"`
}

// Resolver picks a target date and fetches that day's solution word.
type Resolver struct {
	client       *resty.Client
	location     *time.Location
	lookbackDays int
	log          *slog.Logger

	now        func() time.Time
	randomDays func(max int) (int, error)
}

// NewResolver creates a Resolver against baseURL, where the solution for a
// date lives at {baseURL}/{YYYY-MM-DD}.json.
func NewResolver(baseURL string, timeout time.Duration, loc *time.Location, lookbackDays int, logger *slog.Logger) *Resolver {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Resolver{
		client:       client,
		location:     loc,
		lookbackDays: lookbackDays,
		log:          logger.With("adapter", "puzzle"),
		now:          time.Now,
		randomDays:   cryptoDays,
	}
}

// Location returns the timezone used to decide what "today" is.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Today returns the current calendar date in the resolver's timezone.
func (r *Resolver) Today() time.Time {
	now := r.now().In(r.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.location)
}

// TargetDate returns today's date, or a random earlier day within the
// lookback window when useToday is false.
func (r *Resolver) TargetDate(useToday bool) (time.Time, error) {
	today := r.Today()
	if useToday {
		return today, nil
	}
	days, err := r.randomDays(r.lookbackDays)
	if err != nil {
		return time.Time{}, fmt.Errorf("puzzle: pick random day: %w", err)
	}
	return today.AddDate(0, 0, -days), nil
}

// Resolve fetches the solution word for the selected date. There is exactly
// one upstream call and no retry.
func (r *Resolver) Resolve(ctx context.Context, useToday bool) (types.DailyWord, error) {
	date, err := r.TargetDate(useToday)
	if err != nil {
		return types.DailyWord{}, err
	}
	dateStr := date.Format(DateLayout)

	solution, err := r.fetchSolution(ctx, dateStr)
	if err != nil {
		r.log.WarnContext(ctx, "puzzle lookup failed", slog.String("date", dateStr), slog.String("error", err.Error()))
		return types.DailyWord{}, err
	}

	r.log.DebugContext(ctx, "puzzle resolved", slog.String("date", dateStr), slog.Bool("today", useToday))
	return types.DailyWord{
		Solution: solution,
		Date:     dateStr,
		IsToday:  useToday,
	}, nil
}

func (r *Resolver) fetchSolution(ctx context.Context, date string) (string, error) {
	res, err := r.client.R().
		SetContext(ctx).
		SetPathParam("date", date).
		Get("/{date}.json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstreamStatus, res.StatusCode())
	}

	var body puzzleResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	solution := strings.TrimSpace(body.Solution)
	if solution == "" {
		return "", fmt.Errorf("%w: missing solution", ErrMalformedResponse)
	}
	return strings.ToUpper(solution), nil
}

// cryptoDays returns a uniformly random integer in [1, max].
func cryptoDays(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 1, nil
}
