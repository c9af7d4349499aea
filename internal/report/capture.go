package report

import "strings"

// Severity levels recorded by Capture.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Entry is a single recorded report.
type Entry struct {
	Level   string
	Message string
	KV      []any
}

// Capture records every report in memory so tests can assert on what the
// core surfaced. Not safe for concurrent use, matching the single-caller
// discipline of the store itself.
type Capture struct {
	Entries []Entry
}

func (c *Capture) Info(msg string, kv ...any)  { c.append(LevelInfo, msg, kv) }
func (c *Capture) Warn(msg string, kv ...any)  { c.append(LevelWarn, msg, kv) }
func (c *Capture) Error(msg string, kv ...any) { c.append(LevelError, msg, kv) }

func (c *Capture) append(level, msg string, kv []any) {
	c.Entries = append(c.Entries, Entry{Level: level, Message: msg, KV: kv})
}

// Count returns how many entries were recorded at the given level.
func (c *Capture) Count(level string) int {
	n := 0
	for _, e := range c.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Has reports whether any entry at the given level contains substr in its
// message.
func (c *Capture) Has(level, substr string) bool {
	for _, e := range c.Entries {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Reset clears all recorded entries.
func (c *Capture) Reset() { c.Entries = nil }
