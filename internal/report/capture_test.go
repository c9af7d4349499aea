package report

import "testing"

func TestCaptureRecordsLevels(t *testing.T) {
	c := &Capture{}

	c.Info("report line", "qty", 3)
	c.Warn("item not found", "item", "pear")
	c.Error("bad qty")
	c.Error("bad qty again")

	if got := c.Count(LevelInfo); got != 1 {
		t.Errorf("Count(info) = %d, want 1", got)
	}
	if got := c.Count(LevelWarn); got != 1 {
		t.Errorf("Count(warn) = %d, want 1", got)
	}
	if got := c.Count(LevelError); got != 2 {
		t.Errorf("Count(error) = %d, want 2", got)
	}
	if !c.Has(LevelWarn, "not found") {
		t.Error("Has(warn, \"not found\") = false, want true")
	}
	if c.Has(LevelInfo, "not found") {
		t.Error("Has(info, \"not found\") = true, want false")
	}
}

func TestCaptureReset(t *testing.T) {
	c := &Capture{}
	c.Info("x")
	c.Reset()

	if len(c.Entries) != 0 {
		t.Errorf("entries after reset: %+v", c.Entries)
	}
}

func TestNewZapRejectsUnknownLevel(t *testing.T) {
	if _, err := NewZap("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewZapLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		z, err := NewZap(level)
		if err != nil {
			t.Errorf("NewZap(%q): %v", level, err)
			continue
		}
		// must not panic
		z.Info("hello", "level", level)
	}
}
