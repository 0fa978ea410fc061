package app

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	laneHeight   = 3
	laneInterval = 200 * time.Millisecond
	minSpeed     = 0.05
	maxSpeed     = 0.2
)

type floatTickMsg time.Time

func floatTickCmd() tea.Cmd {
	return tea.Tick(laneInterval, func(t time.Time) tea.Msg {
		return floatTickMsg(t)
	})
}

type floatingEmoji struct {
	glyph string
	x     int
	y     float64
	speed float64
}

// emojiLane is a strip of food emoji drifting upward behind the title. Each
// emoji starts below the strip at its own delay and is respawned at a new
// column once it leaves the top.
type emojiLane struct {
	emojis []floatingEmoji
	width  int
	rng    *rand.Rand
}

func newEmojiLane(glyphs []string, count int, seed int64) emojiLane {
	if len(glyphs) == 0 {
		glyphs = text.FoodEmojis
	}
	l := emojiLane{rng: rand.New(rand.NewSource(seed))}
	for i := 0; i < count; i++ {
		e := floatingEmoji{glyph: glyphs[i%len(glyphs)]}
		l.spawn(&e)
		// stagger the start so they don't rise together
		e.y += float64(i)
		l.emojis = append(l.emojis, e)
	}
	return l
}

func (l *emojiLane) spawn(e *floatingEmoji) {
	e.y = laneHeight
	e.speed = minSpeed + l.rng.Float64()*(maxSpeed-minSpeed)
	e.x = 0
	if span := l.width - text.Width(e.glyph); span > 0 {
		e.x = l.rng.Intn(span)
	}
}

func (l *emojiLane) setWidth(w int) {
	l.width = w
	for i := range l.emojis {
		if l.emojis[i].x+text.Width(l.emojis[i].glyph) > w {
			l.spawn(&l.emojis[i])
		}
	}
}

func (l *emojiLane) advance() {
	for i := range l.emojis {
		e := &l.emojis[i]
		e.y -= e.speed
		if e.y < 0 {
			l.spawn(e)
		}
	}
}

func (l emojiLane) View() string {
	if len(l.emojis) == 0 || l.width <= 0 {
		return ""
	}

	rows := make([]string, laneHeight)
	for r := range rows {
		var inRow []floatingEmoji
		for _, e := range l.emojis {
			if int(e.y) == r {
				inRow = append(inRow, e)
			}
		}
		sort.Slice(inRow, func(i, j int) bool { return inRow[i].x < inRow[j].x })

		b := strings.Builder{}
		col := 0
		for _, e := range inRow {
			w := text.Width(e.glyph)
			if e.x < col || e.x+w > l.width {
				continue // overlapping or clipped
			}
			b.WriteString(strings.Repeat(" ", e.x-col))
			b.WriteString(e.glyph)
			col = e.x + w
		}
		b.WriteString(strings.Repeat(" ", max(l.width-col, 0)))
		rows[r] = b.String()
	}
	return lipgloss.NewStyle().Faint(true).Render(strings.Join(rows, "\n"))
}

// gradientTitle colours each letter of s along the theme gradient
func gradientTitle(s string) string {
	letters := []rune(s)
	colors := text.Gradient(ui.GradientFrom, ui.GradientTo, len(letters))
	b := strings.Builder{}
	for i, r := range letters {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors[i])).
			Render(string(r)))
	}
	return b.String()
}
