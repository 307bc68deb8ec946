package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
)

// prefixHandler writes slog records through the log package in the same
// "[LEVEL] message" shape as logInfo and logWarn, followed by key=value attrs.
type prefixHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

func newLogger(level slog.Leveler) *slog.Logger {
	return slog.New(&prefixHandler{level: level})
}

func (h *prefixHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prefixHandler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString("[" + r.Level.String() + "] ")
	if reqID := requestID(ctx); reqID != "" {
		sb.WriteString("[request_id=" + reqID + "] ")
	}
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})

	log.Print(sb.String())
	return nil
}

func (h *prefixHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *prefixHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}

	sb.WriteString(" " + key + "=")
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if s == "" || strings.ContainsAny(s, " =\"") {
			s = strconv.Quote(s)
		}
		sb.WriteString(s)
	default:
		sb.WriteString(fmt.Sprint(a.Value.Any()))
	}
}
