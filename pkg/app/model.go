package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/byxorna/recipebox/pkg/config"
	"github.com/byxorna/recipebox/pkg/db"
	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	appName     = "recipebox"
	appSubtitle = "Cook, Create, Celebrate"
)

// Version is set at build time
var Version = "dev"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)
)

// collectionChangedMsg tells both screens to look at the store again
type collectionChangedMsg struct{}

// switchTabMsg is the navigation signal between screens
type switchTabMsg tab

type confirmRequestMsg deleteIntent

// noticeMsg opens a dialog that has to be dismissed before anything else
// happens
type noticeMsg struct {
	icon  string
	title string
	body  string
}

// ConfigReloadedMsg is sent into the program by the config watcher
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

func collectionChangedCmd() tea.Cmd {
	return func() tea.Msg { return collectionChangedMsg{} }
}

func switchTabCmd(t tab) tea.Cmd {
	return func() tea.Msg { return switchTabMsg(t) }
}

func confirmCmd(intent deleteIntent) tea.Cmd {
	return func() tea.Msg { return confirmRequestMsg(intent) }
}

func noticeCmd(title, body string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{icon: text.EmojiWarning, title: title, body: body} }
}

func aboutCmd(count int) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{
			icon:  text.EmojiNotebook,
			title: "Recipe Book",
			body:  fmt.Sprintf("%s %s\n\nTotal recipes: %d", appName, Version, count),
		}
	}
}

// Application is the root model. It owns navigation, dialogs and the status
// line; the two screens share the store it was built with.
type Application struct {
	*config.Config

	store   db.RecipeStore
	keys    applicationKeyMap
	help    help.Model
	active  tab
	compose composeModel
	browse  browseModel

	lane        emojiLane
	laneTicking bool

	confirm *confirmPrompt
	notice  *noticeMsg

	status     statusMessage
	showStatus bool
	statusSeq  int

	width    int
	height   int
	quitting bool
}

func New(cfg *config.Config, store db.RecipeStore) *Application {
	applyTheme(cfg.Theme)

	m := Application{
		Config:  cfg,
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		active:  composeTab,
		compose: newComposeModel(store),
		browse:  newBrowseModel(store, glamourStyle(cfg.Theme)),
		lane:    newEmojiLane(cfg.Emoji.Glyphs, cfg.Emoji.Count, time.Now().UnixNano()),
	}
	m.laneTicking = cfg.Emoji.Enabled
	store.Subscribe(func(c db.Change) {
		log.Printf("store: %s", c)
	})
	return &m
}

func (m Application) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.Emoji.Enabled {
		cmds = append(cmds, floatTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Application) setSize(width, height int) {
	m.width = width
	m.height = height
	topGap, rightGap, bottomGap, leftGap := appStyle.GetPadding()
	innerWidth := width - leftGap - rightGap
	m.help.Width = innerWidth
	m.lane.setWidth(innerWidth)
	if m.confirm != nil {
		m.confirm.setWidth(width)
	}

	bodyHeight := height - topGap - bottomGap - lipgloss.Height(m.headerView()) - 2
	m.compose.setSize(innerWidth, bodyHeight)
	m.browse.setSize(innerWidth, bodyHeight)
}

// activate switches screens. Becoming active counts as an observation for
// the compose screen, which is how it picks up edit requests.
func (m *Application) activate(t tab) tea.Cmd {
	m.active = t
	switch t {
	case composeTab:
		return tea.Batch(m.compose.observe(), m.compose.setFocus(m.compose.focus))
	case browseTab:
		return m.browse.refresh()
	}
	return nil
}

func (m *Application) newStatusMessage(sm statusMessage) tea.Cmd {
	m.showStatus = true
	m.status = sm
	m.statusSeq++
	return waitForStatusMessageTimeout(m.statusSeq, m.StatusTimeout)
}

func (m *Application) hideStatusMessage() {
	m.showStatus = false
	m.status = statusMessage{}
}

func (m *Application) applyConfig(cfg *config.Config) tea.Cmd {
	// starter recipes only matter at startup
	m.Config = cfg
	applyTheme(cfg.Theme)
	m.browse.setGlamourStyle(glamourStyle(cfg.Theme))
	m.lane = newEmojiLane(cfg.Emoji.Glyphs, cfg.Emoji.Count, time.Now().UnixNano())
	m.setSize(m.width, m.height)

	var cmds []tea.Cmd
	if cfg.Emoji.Enabled && !m.laneTicking {
		m.laneTicking = true
		cmds = append(cmds, floatTickCmd())
	}
	cmds = append(cmds, newStatusCmd(subtleStatusMessage, "Configuration reloaded"))
	return tea.Batch(cmds...)
}

func (m Application) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			log.Printf("config reload failed: %v", msg.Err)
			return m, newStatusCmd(errorStatusMessage, "Config not reloaded: "+msg.Err.Error())
		}
		return m, m.applyConfig(msg.Config)

	case floatTickMsg:
		if !m.Emoji.Enabled {
			m.laneTicking = false
			return m, nil
		}
		m.laneTicking = true
		m.lane.advance()
		return m, floatTickCmd()

	case showStatusMsg:
		return m, m.newStatusMessage(statusMessage(msg))

	case statusMessageTimeoutMsg:
		if int(msg) == m.statusSeq {
			m.hideStatusMessage()
		}
		return m, nil

	case collectionChangedMsg:
		return m, tea.Batch(m.browse.refresh(), m.compose.observe())

	case switchTabMsg:
		return m, m.activate(tab(msg))

	case confirmRequestMsg:
		m.confirm = newConfirmPrompt(deleteIntent(msg))
		m.confirm.setWidth(m.width)
		return m, nil

	case noticeMsg:
		m.notice = &msg
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		if m.notice != nil {
			// any key dismisses the notice, and is not passed on
			m.notice = nil
			return m, nil
		}

		if m.confirm != nil {
			return m.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.NextTab):
			return m, m.activate(m.active.next())
		case key.Matches(msg, m.keys.ComposeTab):
			return m, m.activate(composeTab)
		case key.Matches(msg, m.keys.BrowseTab):
			return m, m.activate(browseTab)
		}

		if m.active == browseTab {
			switch {
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(msg, m.browse.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		switch m.active {
		case composeTab:
			m.compose, cmd = m.compose.update(msg)
		case browseTab:
			m.browse, cmd = m.browse.update(msg)
		}
		return m, cmd
	}

	// everything else (cursor blinks, list internals) goes to both screens
	var cmd tea.Cmd
	m.compose, cmd = m.compose.update(msg)
	cmds = append(cmds, cmd)
	m.browse, cmd = m.browse.update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateConfirm resolves the open delete prompt. Only a yes reaches the
// store.
func (m Application) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.confirm.update(msg)
	if !res.done {
		return m, nil
	}

	intent := m.confirm.intent
	m.confirm = nil
	if !res.confirmed {
		return m, newStatusCmd(subtleStatusMessage, "Delete cancelled")
	}

	var cmd tea.Cmd
	m.browse, cmd = m.browse.performDelete(intent)
	return m, cmd
}

func (m Application) headerView() string {
	title := fmt.Sprintf("%s %s  %s", text.EmojiCooking, gradientTitle(appName), ui.GrayFg(appSubtitle))
	tabs := tabBar{active: m.active, count: m.store.Count(), width: m.lane.width}.View()
	if !m.Emoji.Enabled {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", tabs)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.lane.View(), tabs)
}

func (m Application) statusView() string {
	if m.showStatus {
		return m.status.String()
	}
	return ""
}

func (m Application) helpView() string {
	var keys help.KeyMap
	switch m.active {
	case composeTab:
		keys = helpKeys{m.keys, m.compose.keys}
	default:
		keys = helpKeys{m.keys, m.browse.keys}
	}
	return m.help.View(keys)
}

func (m Application) bodyView() string {
	_, rightGap, _, leftGap := appStyle.GetPadding()
	w := m.width - leftGap - rightGap
	h := lipgloss.Height(m.browse.view())

	switch {
	case m.notice != nil:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, noticeView(*m.notice))
	case m.confirm != nil:
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.confirm.View())
	case m.active == composeTab:
		return m.compose.view()
	default:
		return m.browse.view()
	}
}

func noticeView(n noticeMsg) string {
	body := fmt.Sprintf("%s\n%s\n\n%s",
		ui.HeaderStyle.Render(fmt.Sprintf("%s %s", n.icon, n.title)),
		n.body,
		ui.GrayFg("press any key"))
	return ui.DialogBoxStyle.Render(body)
}

func (m Application) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	return appStyle.Render(strings.Join([]string{
		m.headerView(),
		m.bodyView(),
		m.statusView(),
		m.helpView(),
	}, "\n"))
}

// helpKeys merges the global bindings with the active screen's
type helpKeys struct {
	global help.KeyMap
	screen help.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.screen.ShortHelp(), k.global.ShortHelp()...)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.screen.FullHelp(), k.global.FullHelp()...)
}
