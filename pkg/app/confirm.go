package app

import (
	"fmt"
	"strings"

	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/byxorna/recipebox/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// deleteIntent is a delete the user asked for but has not confirmed yet
type deleteIntent struct {
	id    v1.ID
	title string
	all   bool
	count int
}

func (i deleteIntent) question() string {
	if i.all {
		return fmt.Sprintf("Delete all %d recipes? This cannot be undone.", i.count)
	}
	return fmt.Sprintf("Delete %q? This cannot be undone.", i.title)
}

const defaultDialogWidth = 60

type confirmOption struct {
	label   string
	confirm bool
}

// confirmPrompt gates a delete behind an explicit yes. Cancel is
// highlighted first so a stray enter never deletes anything.
type confirmPrompt struct {
	intent  deleteIntent
	options []confirmOption
	cursor  int
	keys    confirmKeyMap
	width   int
}

// confirmResult is what the prompt resolved to. done is false while the
// prompt is still waiting for an answer.
type confirmResult struct {
	done      bool
	confirmed bool
}

func newConfirmPrompt(intent deleteIntent) *confirmPrompt {
	label := "Delete"
	if intent.all {
		label = "Delete All"
	}
	return &confirmPrompt{
		intent: intent,
		options: []confirmOption{
			{label: "Cancel", confirm: false},
			{label: label, confirm: true},
		},
		keys:  defaultConfirmKeyMap(),
		width: defaultDialogWidth,
	}
}

// setWidth sizes the prompt to the terminal. Zero keeps the default.
func (c *confirmPrompt) setWidth(w int) {
	if w > 0 {
		c.width = w
	}
}

func (c *confirmPrompt) moveLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *confirmPrompt) moveRight() {
	if c.cursor < len(c.options)-1 {
		c.cursor++
	}
}

func (c *confirmPrompt) selected() confirmOption {
	if c.cursor < 0 || c.cursor >= len(c.options) {
		return c.options[0]
	}
	return c.options[c.cursor]
}

// update handles a key while the prompt is open. Anything other than a key
// leaves it waiting.
func (c *confirmPrompt) update(msg tea.Msg) confirmResult {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return confirmResult{}
	}
	switch {
	case key.Matches(k, c.keys.Dismiss):
		return confirmResult{done: true}
	case key.Matches(k, c.keys.Accept):
		return confirmResult{done: true, confirmed: true}
	case key.Matches(k, c.keys.Choose):
		return confirmResult{done: true, confirmed: c.selected().confirm}
	case key.Matches(k, c.keys.Left):
		c.moveLeft()
	case key.Matches(k, c.keys.Right):
		c.moveRight()
	}
	return confirmResult{}
}

func (c confirmPrompt) View() string {
	var b strings.Builder

	b.WriteString(ui.HeaderStyle.Render(fmt.Sprintf("%s Confirm Delete", text.EmojiWastebasket)))
	b.WriteString("\n")
	b.WriteString(text.Wrap(c.intent.question(), max(c.width-8, 20)))
	b.WriteString("\n\n")

	var parts []string
	for i, opt := range c.options {
		if i == c.cursor {
			parts = append(parts, ui.ButtonStyle.Render(opt.label))
		} else {
			parts = append(parts, ui.TabStyle.Render(opt.label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
	b.WriteString("\n\n")
	b.WriteString(ui.GrayFg("y confirm · n/esc cancel · ←/→ choose"))

	return ui.DialogBoxStyle.Render(b.String())
}
