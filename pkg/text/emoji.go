package text

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Ellipsis = "…"
)

var (
	EmojiCooking     = emoji.Cooking.String()
	EmojiNotebook    = emoji.Notebook.String()
	EmojiPencil      = emoji.Pencil.String()
	EmojiWastebasket = emoji.Wastebasket.String()
	EmojiCheck       = emoji.CheckMarkButton.String()
	EmojiWarning     = emoji.Warning.String()

	// FoodEmojis are the glyphs used for recipe icons and the floating lane
	FoodEmojis = []string{
		emoji.Cooking.String(),
		emoji.ShallowPanOfFood.String(),
		emoji.PotOfFood.String(),
		emoji.GreenSalad.String(),
		emoji.Spaghetti.String(),
		emoji.StuffedFlatbread.String(),
		emoji.Pizza.String(),
		emoji.Croissant.String(),
	}
)

var (
	iconHashSalt uint32 = 6969420
)

// FoodEmoji picks a stable icon for a key
func FoodEmoji(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	idx := (h.Sum32() + iconHashSalt) % uint32(len(FoodEmojis))
	return FoodEmojis[idx]
}

// Return the time in a human-readable format relative to the current time.
func RelativeTime(then time.Time) string {
	now := time.Now()
	ago := now.Sub(then)
	if ago < time.Minute {
		return "just now"
	} else if ago < humanize.Week {
		return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
	}
	return then.Format("02 Jan 2006 15:04 MST")
}

// Magnitudes for relative time.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// Gradient blends from one hex colour to another in n steps. Invalid hex
// input falls back to black, which is what colorful does.
func Gradient(fromHex, toHex string, n int) []string {
	if n <= 0 {
		return nil
	}
	from, _ := colorful.Hex(fromHex)
	to, _ := colorful.Hex(toHex)

	out := make([]string, n)
	for i := range out {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = from.BlendLuv(to, t).Clamped().Hex()
	}
	out[0] = from.Hex()
	if n > 1 {
		out[n-1] = to.Hex()
	}
	return out
}
