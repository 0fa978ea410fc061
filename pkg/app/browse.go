package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/byxorna/recipebox/pkg/db"
	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/byxorna/recipebox/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// browseModel lists the recipes and turns edit and delete keys into
// requests. Deletes only reach the store once confirmed.
type browseModel struct {
	store db.RecipeStore
	keys  browseKeyMap
	list  list.Model

	showDetail   bool
	glamourStyle string
	renderer     *glamour.TermRenderer
	rendererErr  error

	width  int
	height int
}

func newBrowseModel(store db.RecipeStore, glamourStyle string) browseModel {
	l := list.New(itemsFromRecipes(store.List()), newRecipeDelegate(), 0, 0)
	l.Title = "My Recipes"
	l.Styles.Title = l.Styles.Title.Background(ui.Tomato)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("recipe", "recipes")
	l.DisableQuitKeybindings()

	m := browseModel{
		store:        store,
		keys:         defaultBrowseKeyMap(),
		list:         l,
		glamourStyle: glamourStyle,
	}
	return m
}

func (m *browseModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(m.listWidth(), height)
	m.renderer, m.rendererErr = newRenderer(m.glamourStyle, m.detailWidth())
}

func (m *browseModel) setGlamourStyle(style string) {
	m.glamourStyle = style
	m.renderer, m.rendererErr = newRenderer(style, m.detailWidth())
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithEmoji(),
		glamour.WithWordWrap(max(width-4, 20)),
	)
}

func (m browseModel) listWidth() int {
	if m.showDetail {
		return m.width / 2
	}
	return m.width
}

func (m browseModel) detailWidth() int {
	return m.width - m.width/2
}

// refresh reloads the list from the store
func (m *browseModel) refresh() tea.Cmd {
	return m.list.SetItems(itemsFromRecipes(m.store.List()))
}

func (m browseModel) selected() (v1.Recipe, bool) {
	item, ok := m.list.SelectedItem().(recipeItem)
	if !ok {
		return v1.Recipe{}, false
	}
	return item.recipe, true
}

func (m browseModel) update(msg tea.Msg) (browseModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Edit):
			r, ok := m.selected()
			if !ok {
				return m, nil
			}
			if err := m.store.FlagForEdit(r.ID); err != nil {
				return m, m.storeError(err)
			}
			log.Printf("browse: flagged %s for editing", r.ID)
			return m, switchTabCmd(composeTab)

		case key.Matches(msg, m.keys.Delete):
			r, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, confirmCmd(deleteIntent{id: r.ID, title: r.Title})

		case key.Matches(msg, m.keys.DeleteAll):
			n := m.store.Count()
			if n == 0 {
				return m, newStatusCmd(subtleStatusMessage, "No recipes to delete")
			}
			return m, confirmCmd(deleteIntent{all: true, count: n})

		case key.Matches(msg, m.keys.About):
			return m, aboutCmd(m.store.Count())

		case key.Matches(msg, m.keys.Details):
			m.showDetail = !m.showDetail
			m.setSize(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// performDelete runs a confirmed delete intent against the store
func (m browseModel) performDelete(intent deleteIntent) (browseModel, tea.Cmd) {
	var status string
	if intent.all {
		m.store.DeleteAll()
		status = "All recipes deleted"
	} else {
		if err := m.store.Delete(intent.id); err != nil {
			return m, tea.Batch(m.refresh(), m.storeError(err))
		}
		status = fmt.Sprintf("Deleted %q", intent.title)
	}
	return m, tea.Batch(m.refresh(), collectionChangedCmd(), newStatusCmd(normalStatusMessage, status))
}

func (m browseModel) storeError(err error) tea.Cmd {
	log.Printf("browse: %v", err)
	if errors.Is(err, db.ErrNoRecipeFound) {
		return newStatusCmd(errorStatusMessage, "That recipe no longer exists")
	}
	return newStatusCmd(errorStatusMessage, err.Error())
}

func (m browseModel) detailView() string {
	r, ok := m.selected()
	if !ok {
		return ""
	}
	md := r.AsMarkdown()
	footer := ui.GrayFg("#" + r.ID.Short())
	if m.renderer == nil {
		return text.Wrap(md, m.detailWidth()) + "\n" + footer
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		log.Printf("browse: rendering %s: %v", r.ID, err)
		return text.Wrap(md, m.detailWidth()) + "\n" + footer
	}
	return strings.TrimRight(out, "\n") + "\n" + footer
}

func (m browseModel) emptyView() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(2, 2).
		Render(fmt.Sprintf("%s %s\n\n%s",
			text.EmojiCooking,
			ui.NormalFg("No recipes yet."),
			ui.GrayFg("Switch to Add Recipe to create your first one.")))
}

func (m browseModel) view() string {
	if m.store.Count() == 0 {
		return m.emptyView()
	}
	if !m.showDetail {
		return m.list.View()
	}
	detail := ui.DetailStyle.
		Width(m.detailWidth()).
		MaxHeight(m.height).
		Render(m.detailView())
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), detail)
}
