// Package report defines the reporting facility the inventory core uses to
// surface conditions that are logged rather than returned: rejected input,
// lookup misses and persistence diagnostics. The interface keeps the core
// independent of a concrete logging backend so tests can assert on what was
// reported.
package report

// Reporter receives leveled messages with optional key/value context.
// The kv arguments follow the zap sugared convention of alternating
// keys and values.
type Reporter interface {
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
