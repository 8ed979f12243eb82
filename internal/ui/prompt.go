package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/menu"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt ends the action that produced a prompt and runs open. An error
// from open is alerted and no command is returned.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.loading = false
	m.clearPending()
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.showAlert(result.Err.Error())
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleFormPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.FormPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		cmd, err := m.startForm(prompt)
		return promptResult{Cmd: cmd, Err: err}
	})
}

func (m *Model) handleConfirmPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.ConfirmPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startConfirm(prompt)
		return promptResult{}
	})
}
