package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	if m.refreshRequested {
		m.refreshRequested = false
		m.loading = false
		m.clearPending()
	}
	return nil
}

// applyBackendEvent folds a poll result into the view. Poll failures only
// show up in the status line; the last good snapshot stays on screen. The
// first event after a manual reload also ends that reload and alerts its
// error.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.refreshRequested {
		m.refreshRequested = false
		m.loading = false
		m.clearPending()
		if evt.Err != nil {
			m.errMsg = evt.Err.Error()
			m.showAlert(evt.Err.Error())
		}
	}
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}
	m.backendLastErr = ""
	res := m.dispatcher.Handle(evt)
	if res.MenuUpdated {
		m.refresh()
	}
}
