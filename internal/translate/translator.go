package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Translator translates single words through the Google Translate web endpoint.
type Translator struct {
	client     *resty.Client
	baseURL    string
	sourceLang string
	targetLang string
	log        *slog.Logger
	onResult   func(err error)
}

// NewTranslator creates a Translator from sourceLang into targetLang.
func NewTranslator(baseURL, sourceLang, targetLang string, timeout time.Duration, logger *slog.Logger) *Translator {
	return &Translator{
		client:     resty.New().SetTimeout(timeout),
		baseURL:    baseURL,
		sourceLang: sourceLang,
		targetLang: targetLang,
		log:        logger.With("adapter", "translate"),
	}
}

// OnResult registers fn to be called after every request with its error, if any.
func (t *Translator) OnResult(fn func(err error)) {
	t.onResult = fn
}

// Translate returns the translation of word, or "" on any failure.
func (t *Translator) Translate(ctx context.Context, word string) string {
	translated, err := t.translate(ctx, word)
	if t.onResult != nil {
		t.onResult(err)
	}
	if err != nil {
		t.log.WarnContext(ctx, "translation failed",
			slog.String("word", word),
			slog.String("target", t.targetLang),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return translated
}

func (t *Translator) translate(ctx context.Context, word string) (string, error) {
	res, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     t.sourceLang,
			"tl":     t.targetLang,
			"dt":     "t",
			"q":      word,
		}).
		Get(t.baseURL)
	if err != nil {
		return "", fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status code: %d", res.StatusCode())
	}
	return parseResponse(res.Body())
}

// parseResponse joins the translated segments of a response shaped like
// [[["translated","original",...],...],...].
func parseResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]any
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("json.Unmarshal segments > %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			sb.WriteString(s)
		}
	}
	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("no translated text")
	}
	return translated, nil
}
