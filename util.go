package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// formatUptime returns a human-readable string for a duration.
func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s, %d second%s",
			hours, plural(hours),
			minutes, plural(minutes),
			seconds, plural(seconds))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s",
			minutes, plural(minutes),
			seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// parseTodayParam reports whether the today query value selects the current
// date. Only a case-insensitive "true" does.
func parseTodayParam(val string) bool {
	return strings.ToLower(strings.TrimSpace(val)) == "true"
}

// requestID returns the request ID stored by requestIDMiddleware, if any.
func requestID(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}

// withRequestID prefixes format with the request ID when one is known. The ID
// comes from a client header, so its verbs are escaped.
func withRequestID(ctx context.Context, format string) string {
	if reqID := requestID(ctx); reqID != "" {
		return "[request_id=" + strings.ReplaceAll(reqID, "%", "%%") + "] " + format
	}
	return format
}

// logInfo logs an info-level message.
func logInfo(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

// logWarn logs a warning-level message.
func logWarn(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}

// logFatal logs a fatal error and exits.
func logFatal(format string, v ...any) {
	log.Fatalf("[FATAL] "+format, v...)
}
