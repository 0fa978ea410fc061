package app

import (
	"fmt"
	"strings"

	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/ui"
	"github.com/charmbracelet/lipgloss"
)

// tab identifies one of the two screens
type tab int

const (
	composeTab tab = iota
	browseTab
)

const tabCount = 2

func (t tab) String() string {
	switch t {
	case composeTab:
		return "Add Recipe"
	case browseTab:
		return "My Recipes"
	}
	return "unknown"
}

func (t tab) icon() string {
	switch t {
	case composeTab:
		return text.EmojiPencil
	case browseTab:
		return text.EmojiNotebook
	}
	return ""
}

// next wraps around
func (t tab) next() tab {
	return tab((int(t) + 1) % tabCount)
}

// tabBar renders the tab row. The browse tab carries the recipe count.
type tabBar struct {
	active tab
	count  int
	width  int
}

func (tb tabBar) label(t tab) string {
	l := fmt.Sprintf("%s %s", t.icon(), t.String())
	if t == browseTab {
		l = fmt.Sprintf("%s (%d)", l, tb.count)
	}
	return l
}

func (tb tabBar) View() string {
	var parts []string
	for i := 0; i < tabCount; i++ {
		t := tab(i)
		if t == tb.active {
			parts = append(parts, ui.ActiveTabStyle.Render(tb.label(t)))
		} else {
			parts = append(parts, ui.TabStyle.Render(tb.label(t)))
		}
	}
	return lipgloss.NewStyle().
		Width(max(tb.width, 0)).
		Render(strings.Join(parts, " "))
}
