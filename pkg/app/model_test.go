package app

import (
	"strings"
	"testing"
	"time"

	"github.com/byxorna/recipebox/pkg/config"
	"github.com/byxorna/recipebox/pkg/db/mem"
	"github.com/byxorna/recipebox/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdTimeout is how long a command gets to produce a message. Ticks and
// cursor blinks take longer and are dropped.
const cmdTimeout = 50 * time.Millisecond

func testConfig() *config.Config {
	c := config.Default
	c.Theme = config.ThemeDark
	c.Emoji.Enabled = false
	c.StatusTimeout = time.Hour
	return &c
}

func newTestApp(t *testing.T, drafts ...v1.Draft) (Application, *mem.Store) {
	t.Helper()
	store, err := mem.New(mem.WithRecipes(drafts...))
	if err != nil {
		t.Fatal(err)
	}
	m := send(t, New(testConfig(), store), tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func execute(c tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- c() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// send feeds msgs to m one by one, running every command that comes back
// until nothing is left to do
func send(t *testing.T, m tea.Model, msgs ...tea.Msg) Application {
	t.Helper()
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)

		queue := []tea.Cmd{cmd}
		for i := 0; len(queue) > 0; i++ {
			if i > 200 {
				t.Fatal("command queue did not settle")
			}
			c := queue[0]
			queue = queue[1:]
			if c == nil {
				continue
			}
			out, ok := execute(c)
			if !ok || out == nil {
				continue
			}
			if batch, ok := out.(tea.BatchMsg); ok {
				queue = append(queue, batch...)
				continue
			}
			var next tea.Cmd
			m, next = m.Update(out)
			queue = append(queue, next)
		}
	}

	switch app := m.(type) {
	case Application:
		return app
	case *Application:
		return *app
	}
	t.Fatalf("unexpected model %T", m)
	return Application{}
}

func TestComposeAddsRecipe(t *testing.T) {
	m, store := newTestApp(t)

	m = send(t, m,
		runes("Pancakes"),
		keyType(tea.KeyTab),
		runes("flour, milk"),
		keyType(tea.KeyTab),
		runes("mix and fry"),
		keyType(tea.KeyCtrlS),
	)

	recipes := store.List()
	if len(recipes) != 1 {
		t.Fatalf("expected 1 recipe but got %d", len(recipes))
	}
	r := recipes[0]
	if r.Title != "Pancakes" || r.Ingredients != "flour, milk" || r.Instructions != "mix and fry" {
		t.Errorf("unexpected recipe %+v", r)
	}
	if !m.compose.draft().IsZero() || m.compose.isEditing() {
		t.Errorf("compose should be cleared after saving: %+v", m.compose.draft())
	}
	if m.compose.focus != titleField {
		t.Errorf("expected focus back on the title but got %d", m.compose.focus)
	}
	if !m.showStatus || m.status.message != "New recipe added!" {
		t.Errorf("unexpected status %+v", m.status)
	}
}

func TestComposeNewestFirst(t *testing.T) {
	m, store := newTestApp(t)
	send(t, m,
		runes("Toast"), keyType(tea.KeyCtrlS),
		runes("Soup"), keyType(tea.KeyCtrlS),
	)
	recipes := store.List()
	if len(recipes) != 2 || recipes[0].Title != "Soup" || recipes[1].Title != "Toast" {
		t.Errorf("expected newest first but got %+v", recipes)
	}
}

func TestComposeBlankTitleShowsNotice(t *testing.T) {
	m, store := newTestApp(t)

	m = send(t, m,
		runes("   "),
		keyType(tea.KeyTab),
		runes("salt"),
		keyType(tea.KeyCtrlS),
	)

	if store.Count() != 0 {
		t.Fatalf("blank title should not be stored, have %d recipes", store.Count())
	}
	if m.notice == nil || m.notice.body != "Recipe title cannot be empty." {
		t.Fatalf("expected a notice but got %+v", m.notice)
	}
	if m.compose.draft().Ingredients != "salt" {
		t.Errorf("draft should be kept after a failed save: %+v", m.compose.draft())
	}
	if !strings.Contains(m.View(), "Hold on!") {
		t.Errorf("notice not rendered")
	}

	// the dismissing key is swallowed
	m = send(t, m, runes("x"))
	if m.notice != nil {
		t.Errorf("notice should be dismissed")
	}
	if m.compose.draft().Ingredients != "salt" {
		t.Errorf("dismissing key reached the form: %+v", m.compose.draft())
	}
}

func TestEditHandoff(t *testing.T) {
	m, store := newTestApp(t,
		v1.Draft{Title: "Pancakes", Ingredients: "flour, milk", Instructions: "fry"},
		v1.Draft{Title: "Toast"},
	)
	id := store.List()[0].ID

	m = send(t, m, keyType(tea.KeyF2), runes("e"))

	if m.active != composeTab {
		t.Fatalf("expected the compose tab after edit but got %s", m.active)
	}
	if m.compose.editing != id {
		t.Fatalf("expected to be editing %s but got %q", id, m.compose.editing)
	}
	if got := m.compose.draft(); got.Title != "Pancakes" || got.Ingredients != "flour, milk" || got.Instructions != "fry" {
		t.Errorf("draft not loaded: %+v", got)
	}
	if _, ok := store.PendingEdit(); ok {
		t.Errorf("pending edit should be consumed once loaded")
	}

	m = send(t, m,
		keyType(tea.KeyTab),
		keyType(tea.KeyTab),
		runes("!"),
		keyType(tea.KeyCtrlS),
	)

	recipes := store.List()
	if len(recipes) != 2 {
		t.Fatalf("update should not add a recipe, have %d", len(recipes))
	}
	if recipes[0].ID != id || recipes[0].Instructions != "fry!" || recipes[0].Modified == nil {
		t.Errorf("expected the first recipe to be updated in place: %+v", recipes[0])
	}
	if m.compose.isEditing() {
		t.Errorf("editing marker should be cleared after updating")
	}
	if m.status.message != "Recipe updated!" {
		t.Errorf("unexpected status %q", m.status.message)
	}
}

func TestEditHandoffIsConsumedOnce(t *testing.T) {
	m, _ := newTestApp(t, v1.Draft{Title: "Pancakes"})

	m = send(t, m, keyType(tea.KeyF2), runes("e"))
	if !m.compose.isEditing() {
		t.Fatal("expected the recipe to be loaded")
	}

	m = send(t, m, keyType(tea.KeyEsc))
	if m.compose.isEditing() || !m.compose.draft().IsZero() {
		t.Fatalf("discard should clear the form: %+v", m.compose.draft())
	}
	if m.status.message != "Edit cancelled" {
		t.Errorf("unexpected status %q", m.status.message)
	}

	m = send(t, m, keyType(tea.KeyF2), keyType(tea.KeyF1))
	if m.compose.isEditing() {
		t.Errorf("returning to compose must not load the recipe again")
	}
}

func TestEditDeletedRecipeFallsBackToAdd(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes"})
	m = send(t, m, keyType(tea.KeyF2), runes("e"))
	store.DeleteAll()

	m = send(t, m, keyType(tea.KeyCtrlS))
	if store.Count() != 0 {
		t.Fatalf("update of a deleted recipe should not store anything")
	}
	if m.compose.isEditing() || m.status.status != errorStatusMessage {
		t.Fatalf("expected an error status and no editing marker: %+v", m.status)
	}

	send(t, m, keyType(tea.KeyCtrlS))
	if store.Count() != 1 || store.List()[0].Title != "Pancakes" {
		t.Errorf("second save should add the draft: %+v", store.List())
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	testcases := map[string]tea.KeyMsg{
		"no":     runes("n"),
		"escape": keyType(tea.KeyEsc),
		"enter":  keyType(tea.KeyEnter), // cancel is selected first
	}

	for name, answer := range testcases {
		t.Run(name, func(t *testing.T) {
			m, store := newTestApp(t, v1.Draft{Title: "Pancakes"}, v1.Draft{Title: "Toast"})
			rev := store.Revision()

			m = send(t, m, keyType(tea.KeyF2), runes("x"))
			if m.confirm == nil {
				t.Fatal("expected a confirmation prompt")
			}
			if !strings.Contains(m.View(), `Delete "Pancakes"?`) {
				t.Errorf("prompt should name the recipe")
			}

			m = send(t, m, answer)
			if m.confirm != nil {
				t.Errorf("prompt should be closed")
			}
			if store.Count() != 2 || store.Revision() != rev {
				t.Errorf("cancelled delete touched the store")
			}
			if m.status.message != "Delete cancelled" {
				t.Errorf("unexpected status %q", m.status.message)
			}
		})
	}
}

func TestDeleteConfirmed(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes"}, v1.Draft{Title: "Toast"})

	m = send(t, m, keyType(tea.KeyF2), runes("x"), runes("y"))

	recipes := store.List()
	if len(recipes) != 1 || recipes[0].Title != "Toast" {
		t.Fatalf("expected only Toast to remain: %+v", recipes)
	}
	if m.status.message != `Deleted "Pancakes"` {
		t.Errorf("unexpected status %q", m.status.message)
	}
	if len(m.browse.list.Items()) != 1 {
		t.Errorf("list should be refreshed, has %d items", len(m.browse.list.Items()))
	}
}

func TestDeleteAll(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes"}, v1.Draft{Title: "Toast"}, v1.Draft{Title: "Soup"})

	m = send(t, m, keyType(tea.KeyF2), runes("D"))
	if m.confirm == nil || !strings.Contains(m.confirm.View(), "Delete all 3 recipes?") {
		t.Fatal("expected a delete all prompt")
	}

	m = send(t, m, keyType(tea.KeyRight), keyType(tea.KeyEnter))
	if store.Count() != 0 {
		t.Fatalf("expected every recipe deleted, %d left", store.Count())
	}
	if !strings.Contains(m.View(), "No recipes yet.") {
		t.Errorf("expected the empty view")
	}

	m = send(t, m, runes("D"))
	if m.confirm != nil {
		t.Errorf("nothing to confirm on an empty collection")
	}
	if m.status.message != "No recipes to delete" {
		t.Errorf("unexpected status %q", m.status.message)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestApp(t)

	// q is typed on the compose tab
	m = send(t, m, runes("q"))
	if m.quitting || m.compose.draft().Title != "q" {
		t.Fatalf("q should be typed into the title")
	}

	m2, _ := m.Update(keyType(tea.KeyF2))
	m2, cmd := m2.Update(runes("q"))
	if !m2.(Application).quitting || cmd == nil {
		t.Fatal("q should quit on the browse tab")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected a quit command")
	}

	m3, cmd := m.Update(keyType(tea.KeyCtrlC))
	if !m3.(Application).quitting || cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestApp(t, v1.Draft{Title: "Pancakes"})

	if m.active != composeTab {
		t.Fatalf("expected to start on the compose tab")
	}
	view := m.View()
	if !strings.Contains(view, "Add Recipe") || !strings.Contains(view, "My Recipes (1)") {
		t.Errorf("tab bar missing from view:\n%s", view)
	}

	m = send(t, m, keyType(tea.KeyCtrlT))
	if m.active != browseTab {
		t.Errorf("expected the browse tab")
	}
	m = send(t, m, keyType(tea.KeyCtrlT))
	if m.active != composeTab {
		t.Errorf("expected to wrap back to the compose tab")
	}
}

func TestStatusTimeoutKeepsNewerMessage(t *testing.T) {
	m, _ := newTestApp(t)

	m = send(t, m, showStatusMsg{message: "first"})
	first := m.statusSeq
	m = send(t, m, showStatusMsg{message: "second"})

	m = send(t, m, statusMessageTimeoutMsg(first))
	if !m.showStatus || m.status.message != "second" {
		t.Errorf("stale timeout hid the newer message")
	}

	m = send(t, m, statusMessageTimeoutMsg(m.statusSeq))
	if m.showStatus {
		t.Errorf("expected the status to be hidden")
	}
}

func TestConfigReloaded(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes"})

	next := config.Default
	next.Theme = config.ThemeLight
	next.StatusTimeout = time.Hour
	next.StarterRecipes = []v1.Draft{{Title: "Ignored"}}

	m = send(t, m, ConfigReloadedMsg{Config: &next})
	if m.Theme != config.ThemeLight || !m.Emoji.Enabled {
		t.Errorf("config not applied: %+v", m.Config)
	}
	if m.browse.glamourStyle != lightStyle {
		t.Errorf("expected the light markdown style but got %s", m.browse.glamourStyle)
	}
	if store.Count() != 1 {
		t.Errorf("starter recipes must not be loaded on reload")
	}

	m = send(t, m, ConfigReloadedMsg{Err: errTest})
	if m.Theme != config.ThemeLight || m.status.status != errorStatusMessage {
		t.Errorf("failed reload should keep the config and report: %+v", m.status)
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("bad yaml")

func TestDetailPane(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes", Ingredients: "flour, milk"})
	id := store.List()[0].ID

	m = send(t, m, keyType(tea.KeyF2), keyType(tea.KeyEnter))
	if !m.browse.showDetail {
		t.Fatal("enter should open the detail pane")
	}
	if !strings.Contains(m.browse.detailView(), "flour") {
		t.Errorf("detail pane should list ingredients:\n%s", m.browse.detailView())
	}
	if !strings.Contains(m.browse.detailView(), "#"+id.Short()) {
		t.Errorf("detail pane should show the short id %s", id.Short())
	}

	m = send(t, m, keyType(tea.KeyEnter))
	if m.browse.showDetail {
		t.Errorf("enter should close the detail pane")
	}
}

func TestAbout(t *testing.T) {
	m, _ := newTestApp(t, v1.Draft{Title: "Pancakes"}, v1.Draft{Title: "Toast"})

	m = send(t, m, keyType(tea.KeyF2), runes("i"))
	if m.notice == nil || !strings.Contains(m.notice.body, "Total recipes: 2") {
		t.Fatalf("expected the about dialog but got %+v", m.notice)
	}
	if !strings.Contains(m.View(), "Recipe Book") {
		t.Errorf("about dialog not rendered")
	}
}

func TestResizeWhileConfirming(t *testing.T) {
	m, store := newTestApp(t, v1.Draft{Title: "Pancakes"}, v1.Draft{Title: "Toast"}, v1.Draft{Title: "Soup"})

	m = send(t, m, keyType(tea.KeyF2), runes("D"))
	if m.confirm == nil || m.confirm.width != 100 {
		t.Fatalf("expected a prompt sized to the terminal: %+v", m.confirm)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 50, Height: 40})
	if m.confirm == nil {
		t.Fatal("resizing should not close the prompt")
	}
	if m.confirm.width != 50 {
		t.Errorf("expected the prompt to follow the resize but width is %d", m.confirm.width)
	}
	if !strings.Contains(m.View(), "Delete all 3 recipes?") {
		t.Errorf("prompt question should survive the resize:\n%s", m.View())
	}
	if store.Count() != 3 {
		t.Errorf("resizing must not touch the store")
	}
}
