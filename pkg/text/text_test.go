package text

import (
	"strings"
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	testcases := map[time.Duration]string{
		10 * time.Second: "just now",
		5 * time.Minute:  "5 minutes ago",
		3 * time.Hour:    "3 hours ago",
	}
	for ago, expected := range testcases {
		if got := RelativeTime(now.Add(-ago)); got != expected {
			t.Errorf("RelativeTime(-%s) = %q, want %q", ago, got, expected)
		}
	}

	old := time.Date(2020, 1, 2, 3, 4, 0, 0, time.UTC)
	if got := RelativeTime(old); !strings.HasPrefix(got, "02 Jan 2020") {
		t.Errorf("expected absolute date for old timestamps but got %q", got)
	}
}

func TestFoodEmojiIsStable(t *testing.T) {
	for _, key := range []string{"a", "b", "0190a7b2-7c3e-7d41-9c1e-3f0b7a2c5e11"} {
		first := FoodEmoji(key)
		if first == "" {
			t.Fatalf("no emoji for %q", key)
		}
		for i := 0; i < 3; i++ {
			if got := FoodEmoji(key); got != first {
				t.Fatalf("FoodEmoji(%q) changed from %q to %q", key, first, got)
			}
		}
	}
}

func TestGradient(t *testing.T) {
	g := Gradient("#000000", "#ffffff", 3)
	if len(g) != 3 {
		t.Fatalf("expected 3 colours but got %d", len(g))
	}
	if g[0] != "#000000" || g[2] != "#ffffff" {
		t.Errorf("gradient endpoints wrong: %v", g)
	}
	if len(Gradient("#000000", "#ffffff", 0)) != 0 {
		t.Errorf("expected empty gradient for n=0")
	}
	if g := Gradient("#ff6347", "#feda75", 1); len(g) != 1 || g[0] != "#ff6347" {
		t.Errorf("single step gradient should be the start colour, got %v", g)
	}
}

func TestWidth(t *testing.T) {
	if got := Width("abc"); got != 3 {
		t.Errorf("Width(abc) = %d", got)
	}
	if got := Width(FoodEmojis[0]); got != 2 {
		t.Errorf("expected emoji to be 2 cells wide but got %d", got)
	}
}

func TestOneLineAndTruncate(t *testing.T) {
	if got := OneLine("flour,\n  milk\n\neggs"); got != "flour, milk eggs" {
		t.Errorf("OneLine = %q", got)
	}
	if got := TruncateWithTail("pancakes with syrup", 8, Ellipsis); got != "pancake"+Ellipsis {
		t.Errorf("TruncateWithTail = %q", got)
	}
}
