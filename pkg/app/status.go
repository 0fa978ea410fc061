package app

import (
	"time"

	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// statusMessageType adds some context to the status message being sent.
type statusMessageType int

// Types of status messages.
const (
	normalStatusMessage statusMessageType = iota
	subtleStatusMessage
	errorStatusMessage
)

// statusMessage is an ephemeral note displayed in the UI.
type statusMessage struct {
	status  statusMessageType
	message string
}

// String returns a styled version of the status message appropriate for the
// given context.
func (s statusMessage) String() string {
	switch s.status {
	case subtleStatusMessage:
		return ui.DimGreenFg(s.message)
	case errorStatusMessage:
		return ui.ErrorBadge.Render("Error") + " " + ui.RedFg(s.message)
	default:
		return text.EmojiCheck + " " + ui.GreenFg(s.message)
	}
}

type showStatusMsg statusMessage

// statusMessageTimeoutMsg carries the sequence number of the message it
// expires, so a newer message is not hidden early
type statusMessageTimeoutMsg int

func newStatusCmd(status statusMessageType, message string) tea.Cmd {
	return func() tea.Msg {
		return showStatusMsg(statusMessage{status: status, message: message})
	}
}

func waitForStatusMessageTimeout(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg(seq)
	})
}
