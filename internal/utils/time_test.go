package utils

import (
	"testing"
	"time"
)

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"01.09.2026", "2026/09/01", "2026-9-1", ""} {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("ParseDate(%q) accepted, want error", s)
		}
	}
	if _, err := ParseDate(" 2026-09-01 "); err != nil {
		t.Fatalf("padded date rejected: %v", err)
	}
}

func TestBeforeTodayIgnoresTimeOfDay(t *testing.T) {
	if BeforeToday(time.Now()) {
		t.Fatalf("today must not be before today")
	}
	lateToday := Today().Add(23 * time.Hour)
	if BeforeToday(lateToday) {
		t.Fatalf("late today must not be before today")
	}
	if !BeforeToday(Today().AddDate(0, 0, -1)) {
		t.Fatalf("yesterday must be before today")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ivan.Petrov@Example.COM "); got != "ivan.petrov@example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Ivan \t Petrov\n"); got != "Ivan Petrov" {
		t.Fatalf("got %q", got)
	}
}
