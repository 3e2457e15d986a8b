package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/source"
)

// recordsLoadedMsg carries the one-shot fetch result into the event loop.
type recordsLoadedMsg struct{ result *source.Result }

// loadFailedMsg is the terminal could-not-load-data state; the fetch is not
// retried.
type loadFailedMsg struct{ err error }

// DatasetReloadedMsg is sent from outside the program (the fsnotify watcher)
// when the CSV dataset changed on disk.
type DatasetReloadedMsg struct{ Result *source.Result }

// loadCmd performs the startup fetch off the UI goroutine.
func loadCmd(ctx context.Context, src source.Source) tea.Cmd {
	return func() tea.Msg {
		res, err := src.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg{result: res}
	}
}
