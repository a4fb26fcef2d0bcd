package session

import (
	"testing"

	"wikibot/internal/locale"
)

func TestLanguageDefaultsForUnknownUser(t *testing.T) {
	m := NewManager()
	if got := m.Language(12345); got != locale.Default {
		t.Fatalf("want default %q, got %q", locale.Default, got)
	}
}

func TestSetLanguageIsolatedPerUser(t *testing.T) {
	m := NewManager()
	userA := int64(1)
	userB := int64(2)

	m.SetLanguage(userA, "en")

	if got := m.Language(userA); got != "en" {
		t.Fatalf("user A: want en, got %q", got)
	}
	if got := m.Language(userB); got != locale.Default {
		t.Fatalf("user B affected by user A: got %q", got)
	}

	m.SetLanguage(userA, "ru")
	if got := m.Language(userA); got != "ru" {
		t.Fatalf("overwrite failed: got %q", got)
	}
}
