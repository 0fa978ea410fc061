package runtime

import (
	"fmt"
	"io"
	"log"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	XDGName = "recipebox"
	LogName = "debug.log"
)

// File returns the path of filename under the XDG runtime directory,
// creating parent directories as needed
func File(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}

// SetupLogging points the standard logger at the debug log when debug is
// set and discards everything otherwise. The terminal belongs to the UI, so
// nothing is ever logged to stderr.
func SetupLogging(debug bool) (io.Closer, string, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nopCloser{}, "", nil
	}

	path, err := File(LogName)
	if err != nil {
		return nil, "", fmt.Errorf("unable to locate debug log: %w", err)
	}
	f, err := tea.LogToFile(path, XDGName)
	if err != nil {
		return nil, "", fmt.Errorf("unable to open debug log %s: %w", path, err)
	}
	return f, path, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
