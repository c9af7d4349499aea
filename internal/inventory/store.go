// Package inventory implements an in-memory stock tracker: quantities keyed
// by item name, with low-stock reporting and JSON snapshot persistence.
//
// Invalid user input never propagates as an error; it is surfaced through the
// injected report.Reporter and the operation becomes a no-op. Only the
// persistence boundary returns errors.
package inventory

import (
	"fmt"
	"time"

	"github.com/euphoricair7/stockpile/internal/report"
)

const (
	// DefaultLowStockThreshold is the threshold used by callers that do
	// not supply one.
	DefaultLowStockThreshold = 5

	// DefaultPath is the default snapshot location.
	DefaultPath = "inventory.json"

	journalTimeLayout = "2006-01-02 15:04:05"
)

// Journal collects timestamped descriptions of successful additions. It is
// owned by the caller; the store only appends to it.
type Journal struct {
	Entries []string
}

// Store holds the item -> quantity mapping. Iteration order for LowStock and
// Report follows insertion order. No entry is ever stored with a quantity
// <= 0 through the operation surface; Load accepts snapshot values verbatim
// (see Load).
//
// A Store assumes a single caller and carries no lock. Embedders that share
// one across goroutines must add their own exclusion.
type Store struct {
	rep   report.Reporter
	items map[string]int
	order []string
	now   func() time.Time
}

// New creates an empty store reporting through rep. A nil rep discards all
// reports.
func New(rep report.Reporter) *Store {
	if rep == nil {
		rep = report.Nop{}
	}
	return &Store{
		rep:   rep,
		items: make(map[string]int),
		now:   time.Now,
	}
}

// Add increments the stored quantity for item by qty, creating the entry if
// absent. A negative qty is reported as an error and ignored. An empty item
// name is silently ignored. On success, if j is non-nil, a timestamped entry
// describing the addition is appended to it.
func (s *Store) Add(item string, qty int, j *Journal) {
	if qty < 0 {
		s.rep.Error("add: qty must be non-negative, skipping", "item", item, "qty", qty)
		return
	}
	if item == "" {
		return
	}
	if _, ok := s.items[item]; !ok {
		s.order = append(s.order, item)
	}
	s.items[item] += qty
	if j != nil {
		j.Entries = append(j.Entries,
			fmt.Sprintf("%s: Added %d of %s", s.now().Format(journalTimeLayout), qty, item))
	}
}

// Remove subtracts qty from the stored quantity for item. A qty <= 0 is
// reported as an error and ignored; note zero is rejected here, unlike Add.
// A missing item is reported as a warning and ignored. If the remaining
// quantity drops to zero or below the entry is deleted entirely.
func (s *Store) Remove(item string, qty int) {
	if qty <= 0 {
		s.rep.Error("remove: qty must be positive, skipping", "item", item, "qty", qty)
		return
	}
	left, ok := s.items[item]
	if !ok {
		s.rep.Warn("remove: item not found in stock", "item", item)
		return
	}
	left -= qty
	if left <= 0 {
		s.deleteItem(item)
		return
	}
	s.items[item] = left
}

// QuantityOf returns the stored quantity for item, or 0 if absent.
func (s *Store) QuantityOf(item string) int {
	return s.items[item]
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, in insertion order.
func (s *Store) LowStock(threshold int) []string {
	var low []string
	for _, name := range s.order {
		if s.items[name] < threshold {
			low = append(low, name)
		}
	}
	return low
}

// Report emits one informational line per item, in insertion order.
func (s *Store) Report() {
	s.rep.Info("items report")
	for _, name := range s.order {
		s.rep.Info("item", "name", name, "qty", s.items[name])
	}
}

// Names returns the item names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Items returns a copy of the mapping.
func (s *Store) Items() map[string]int {
	out := make(map[string]int, len(s.items))
	for name, qty := range s.items {
		out[name] = qty
	}
	return out
}

// Len returns the number of distinct items in stock.
func (s *Store) Len() int { return len(s.items) }

func (s *Store) deleteItem(item string) {
	delete(s.items, item)
	for i, name := range s.order {
		if name == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
