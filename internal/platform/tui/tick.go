// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/config"
)

// FrameMsg is sent to trigger a render frame. The clock decides how many
// simulation ticks the frame runs.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// ReloadMsg reports that a watched config file changed on disk.
type ReloadMsg struct {
	Path string
}

// watchErrMsg carries a watcher failure into the update loop.
type watchErrMsg struct {
	err error
}

// waitForReload blocks on the watcher until the next change or error.
// A closed watcher yields no message.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ReloadMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}
