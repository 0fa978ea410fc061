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
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	titleCharacterLimit = 120
	textAreaHeight      = 4
)

type composeField int

const (
	titleField composeField = iota
	ingredientsField
	instructionsField
)

const composeFieldCount = 3

// composeModel owns the draft being typed. editing is the id of the recipe
// being edited, or empty when the draft will become a new recipe.
type composeModel struct {
	store db.RecipeStore
	keys  composeKeyMap

	title        textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	focus        composeField
	editing      v1.ID

	width int
}

func newComposeModel(store db.RecipeStore) composeModel {
	title := textinput.New()
	title.Placeholder = "Recipe title"
	title.CharLimit = titleCharacterLimit
	title.Prompt = ""

	ingredients := newTextArea("flour, milk, eggs…")
	instructions := newTextArea("Mix, then fry until golden…")

	m := composeModel{
		store:        store,
		keys:         defaultComposeKeyMap(),
		title:        title,
		ingredients:  ingredients,
		instructions: instructions,
	}
	m.setFocus(titleField)
	return m
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(textAreaHeight)
	return ta
}

func (m composeModel) draft() v1.Draft {
	return v1.Draft{
		Title:        m.title.Value(),
		Ingredients:  m.ingredients.Value(),
		Instructions: m.instructions.Value(),
	}
}

func (m composeModel) isEditing() bool { return m.editing != "" }

func (m *composeModel) setSize(width, height int) {
	m.width = width
	w := max(width-4, 10)
	m.title.Width = w
	m.ingredients.SetWidth(w)
	m.instructions.SetWidth(w)
}

func (m *composeModel) setFocus(f composeField) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.ingredients.Blur()
	m.instructions.Blur()
	switch f {
	case ingredientsField:
		return m.ingredients.Focus()
	case instructionsField:
		return m.instructions.Focus()
	default:
		return m.title.Focus()
	}
}

// load replaces the draft with r and remembers r as the recipe being edited
func (m *composeModel) load(r v1.Recipe) tea.Cmd {
	m.title.SetValue(r.Title)
	m.ingredients.SetValue(r.Ingredients)
	m.instructions.SetValue(r.Instructions)
	m.editing = r.ID
	return m.setFocus(titleField)
}

// reset clears the draft and the editing marker
func (m *composeModel) reset() tea.Cmd {
	m.title.Reset()
	m.ingredients.Reset()
	m.instructions.Reset()
	m.editing = ""
	return m.setFocus(titleField)
}

// observe picks up an edit request left in the store by the browse screen.
// The request is consumed, so observing again finds nothing.
func (m *composeModel) observe() tea.Cmd {
	r, ok := m.store.ConsumePendingEdit()
	if !ok {
		return nil
	}
	log.Printf("compose: loading %s for editing", r.ID)
	return tea.Batch(
		m.load(r),
		newStatusCmd(subtleStatusMessage, fmt.Sprintf("Editing %q", r.Title)),
	)
}

// submit adds or updates depending on whether a recipe is being edited
func (m composeModel) submit() (composeModel, tea.Cmd) {
	d := m.draft()

	var (
		err     error
		message string
	)
	if m.isEditing() {
		err = m.store.Update(m.editing, d)
		message = "Recipe updated!"
	} else {
		_, err = m.store.Add(d)
		message = "New recipe added!"
	}

	switch {
	case errors.Is(err, db.ErrInvalidRecipe):
		return m, noticeCmd("Hold on!", "Recipe title cannot be empty.")
	case errors.Is(err, db.ErrNoRecipeFound):
		// deleted while we were editing it; the next save adds it as new
		log.Printf("compose: %v", err)
		m.editing = ""
		return m, newStatusCmd(errorStatusMessage, "That recipe no longer exists. Save again to add it as a new recipe.")
	case err != nil:
		return m, newStatusCmd(errorStatusMessage, err.Error())
	}

	cmd := m.reset()
	return m, tea.Batch(cmd, collectionChangedCmd(), newStatusCmd(normalStatusMessage, message))
}

func (m composeModel) update(msg tea.Msg) (composeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Discard):
			if m.draft().IsZero() && !m.isEditing() {
				return m, nil
			}
			wasEditing := m.isEditing()
			cmd := m.reset()
			if wasEditing {
				return m, tea.Batch(cmd, newStatusCmd(subtleStatusMessage, "Edit cancelled"))
			}
			return m, cmd

		case key.Matches(msg, m.keys.NextField):
			return m, m.setFocus((m.focus + 1) % composeFieldCount)

		case key.Matches(msg, m.keys.PrevField):
			return m, m.setFocus((m.focus + composeFieldCount - 1) % composeFieldCount)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case titleField:
		m.title, cmd = m.title.Update(msg)
	case ingredientsField:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case instructionsField:
		m.instructions, cmd = m.instructions.Update(msg)
	}
	return m, cmd
}

func (m composeModel) header() string {
	if m.isEditing() {
		return fmt.Sprintf("%s Edit Recipe", text.EmojiPencil)
	}
	return fmt.Sprintf("%s Add New Recipe", text.EmojiCooking)
}

func (m composeModel) label(f composeField, s string) string {
	if m.focus == f {
		return ui.FocusedLabelStyle.Render(s)
	}
	return ui.LabelStyle.Render(s)
}

func (m composeModel) view() string {
	button := "Save Recipe"
	if m.isEditing() {
		button = "Update Recipe"
	}

	b := strings.Builder{}
	b.WriteString(ui.HeaderStyle.Render(m.header()))
	b.WriteString("\n")
	b.WriteString(m.label(titleField, "Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.label(ingredientsField, "Ingredients"))
	b.WriteString("\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n\n")
	b.WriteString(m.label(instructionsField, "Instructions"))
	b.WriteString("\n")
	b.WriteString(m.instructions.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		ui.ButtonStyle.Render(button),
		"  ",
		ui.GrayFg(m.keys.Submit.Help().Key)))
	return b.String()
}
