package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
)

// startForm opens the modal with the form for prompt, replacing whatever the
// modal showed before.
func (m *Model) startForm(prompt menu.FormPrompt) (tea.Cmd, error) {
	form, err := menu.NewForm(prompt)
	if err != nil {
		return nil, err
	}
	m.closeModal("replaced")
	m.form = form
	m.mode = ModeForm
	m.submit.Reset()
	events.UI.ModalOpen(form.Title())
	return nil, nil
}

func (m *Model) startConfirm(prompt menu.ConfirmPrompt) {
	m.closeModal("replaced")
	m.confirm = &prompt
	m.mode = ModeConfirm
	m.submit.Reset()
	events.UI.ModalOpen(prompt.Message)
}

// closeModal drops the open form or confirmation, if any.
func (m *Model) closeModal(reason string) {
	switch {
	case m.form != nil:
		events.UI.ModalClose(m.form.Title(), reason)
	case m.confirm != nil:
		events.UI.ModalClose(m.confirm.Message, reason)
	}
	m.form = nil
	m.confirm = nil
	m.mode = ModeList
	m.submit.Reset()
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeList
		return false, nil
	}
	if msg.String() == "ctrl+c" {
		return true, tea.Quit
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.closeModal("escape")
		return true, cmd
	}
	if done {
		return true, m.submitForm()
	}
	return true, cmd
}

// submitForm validates and sends the form at most once per attempt. Presses
// while a request is in flight are dropped.
func (m *Model) submitForm() tea.Cmd {
	actionID := m.form.ActionID()
	if m.submit.Busy() {
		events.UI.SubmitIgnored(actionID)
		return nil
	}
	save, err := m.form.Submit()
	if err != nil {
		m.errMsg = err.Error()
		m.showAlert(err.Error())
		return nil
	}
	seq := m.submit.Begin()
	m.pendingID = actionID
	m.pendingLabel = m.form.PendingLabel()
	m.errMsg = ""
	m.forceClearInfo()
	return menu.WithSeq(save, seq)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.confirm == nil {
		m.mode = ModeList
		return false, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "y", "Y", "enter":
		if m.submit.Busy() {
			events.UI.SubmitIgnored(m.confirm.Action)
			return true, nil
		}
		cmd := menu.ConfirmedCommand(*m.confirm)
		if cmd == nil {
			m.closeModal("unsupported")
			return true, nil
		}
		seq := m.submit.Begin()
		m.pendingID = m.confirm.Action
		m.pendingLabel = m.confirm.Message
		m.errMsg = ""
		return true, menu.WithSeq(cmd, seq)
	case "n", "N", "esc":
		if m.submit.Busy() {
			return true, nil
		}
		m.closeModal("declined")
		return true, nil
	}
	return true, nil
}
