package main

import (
	"testing"

	"github.com/euphoricair7/stockpile/internal/inventory"
)

func TestRemoveAndSummarize(t *testing.T) {
	store := inventory.New(nil)
	store.Add("apple", 5, nil)

	if got, want := removeAndSummarize(store, "pear", 1), "no pear in stock"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
	if got := store.QuantityOf("apple"); got != 5 {
		t.Errorf("QuantityOf(apple) = %d, want 5", got)
	}

	if got, want := removeAndSummarize(store, "apple", 2), "apple: 3 left"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	// removal to zero is a real removal, not a miss
	if got, want := removeAndSummarize(store, "apple", 3), "apple: 0 left"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty inventory, got %v", store.Items())
	}
}
