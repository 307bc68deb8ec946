package main

// Word configuration constants
const (
	WordLength   = 5       // Length of a puzzle solution
	FallbackWord = "REACT" // Served when the puzzle service is unavailable
	TimezoneName = "IST"   // Reported timezone for resolved dates
)

// Route constants
const (
	RouteWordleWord  = "/wordle-word"
	RouteWordMeaning = "/word-meaning/:word"
	RouteHealthz     = "/healthz"
	RouteMetrics     = "/metrics"
)

// Error message constants
const (
	ErrorInvalidLength   = "Please provide a 5-letter word"
	ErrorMeaningNotFound = "Word meaning not found in any dictionary source"
)

// Stub meaning used when no dictionary knows the daily word
const (
	StubPartOfSpeech = "unknown"
	StubDefinition   = "Definition not available"
	StubSource       = "None"
)

// Upstream service labels for metrics. Dictionary sources use their own names.
const (
	ServicePuzzle    = "puzzle"
	ServiceTranslate = "translate"
)

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
