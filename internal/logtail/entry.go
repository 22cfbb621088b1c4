package logtail

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Entry is one parsed log record.
type Entry struct {
	Time    time.Time
	Level   string
	Logger  string
	Message string
	// Fields holds every key that is not one of the standard zap keys.
	Fields map[string]any
	// Raw is the original line; it is the message when the line is not JSON.
	Raw string
}

var reservedKeys = map[string]struct{}{
	"ts": {}, "level": {}, "logger": {}, "msg": {}, "caller": {}, "stacktrace": {},
}

// Parse decodes a zap JSON line. Lines that are not JSON objects come back
// with the whole line as Message.
func Parse(line string) Entry {
	entry := Entry{Raw: line}

	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		entry.Message = strings.TrimSpace(line)
		return entry
	}

	entry.Level = strings.ToUpper(stringField(raw, "level"))
	entry.Logger = stringField(raw, "logger")
	entry.Message = stringField(raw, "msg")
	entry.Time = parseTime(raw["ts"])

	for key, value := range raw {
		if _, reserved := reservedKeys[key]; reserved {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]any)
		}
		entry.Fields[key] = value
	}
	return entry
}

// FieldString renders a field value for display, or "" when absent.
func (e Entry) FieldString(key string) string {
	value, ok := e.Fields[key]
	if !ok || value == nil {
		return ""
	}
	return formatValue(value)
}

// Summary renders the entry on one line: time, level, logger, message, then
// fields sorted by key.
func (e Entry) Summary() string {
	if e.Level == "" && e.Time.IsZero() {
		return e.Message
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		fmt.Fprintf(&b, "%-5s ", e.Level)
	}
	if e.Logger != "" {
		b.WriteString(e.Logger)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%s", key, formatValue(e.Fields[key]))
	}
	return b.String()
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

// parseTime accepts the epoch-seconds float of zap's production encoder and
// the ISO8601/RFC3339 strings of the development and custom encoders.
func parseTime(value any) time.Time {
	switch v := value.(type) {
	case float64:
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*1e9))
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z0700"} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case nil:
		return "null"
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
