package main

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		dur      time.Duration
		expected string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second * 65, "1 minute, 5 seconds"},
		{time.Second * 3665, "1 hour, 1 minute, 5 seconds"},
		{time.Second * 3600, "1 hour, 0 minutes, 0 seconds"},
		{time.Second * 60, "1 minute, 0 seconds"},
		{time.Second * 1, "1 second"},
	}
	for _, c := range cases {
		got := formatUptime(c.dur)
		if got != c.expected {
			t.Errorf("formatUptime(%v) = %q, want %q", c.dur, got, c.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("plural(1) = %q, want \"\"", plural(1))
	}
	if plural(2) != "s" {
		t.Errorf("plural(2) = %q, want \"s\"", plural(2))
	}
	if plural(0) != "s" {
		t.Errorf("plural(0) = %q, want \"s\"", plural(0))
	}
}

func TestParseTodayParam(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		" True": true,
		"false": false,
		"1":     false,
		"yes":   false,
		"":      false,
	}
	for in, want := range cases {
		if got := parseTodayParam(in); got != want {
			t.Errorf("parseTodayParam(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithRequestID(t *testing.T) {
	if got := withRequestID(context.Background(), "msg %s"); got != "msg %s" {
		t.Errorf("withRequestID without ID = %q", got)
	}
	ctx := context.WithValue(context.Background(), requestIDKey, "r1")
	if got := withRequestID(ctx, "msg %s"); got != "[request_id=r1] msg %s" {
		t.Errorf("withRequestID with ID = %q", got)
	}

	ctx = context.WithValue(context.Background(), requestIDKey, "%s%d")
	got := fmt.Sprintf(withRequestID(ctx, "lookup for %q (%d letters)"), "abcdef", 6)
	if want := `[request_id=%s%d] lookup for "abcdef" (6 letters)`; got != want {
		t.Errorf("withRequestID with verbs in ID = %q, want %q", got, want)
	}
}

func TestStubMeaning(t *testing.T) {
	m := stubMeaning("crane")
	if m.Word != "CRANE" || m.Source != StubSource {
		t.Errorf("stubMeaning = %+v", m)
	}
	if len(m.Meanings) != 1 || m.Meanings[0].Definition == "" {
		t.Errorf("stubMeaning meanings = %+v", m.Meanings)
	}
}

func TestFallbackMeaning(t *testing.T) {
	m := fallbackMeaning()
	if m == nil || m.Word != FallbackWord {
		t.Fatalf("fallbackMeaning = %+v", m)
	}
	m.Meanings[0].Definition = "changed"
	if fallbackMeaning().Meanings[0].Definition == "changed" {
		t.Error("fallbackMeaning must return a fresh copy")
	}
}
