package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/ui/command"
)

func (m *Model) handleSnapshotLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(menu.SnapshotLoaded)
	if !ok {
		return nil
	}
	m.loading = false
	m.clearPending()
	if loaded.Err != nil {
		m.errMsg = loaded.Err.Error()
		if loaded.Reason == reloadInitial {
			m.showAlert(fmt.Sprintf("Admin error: %s", loaded.Err.Error()))
		} else {
			m.showAlert(loaded.Err.Error())
		}
		return nil
	}
	m.applySnapshot(loaded.Snapshot)
	if loaded.Reason != reloadInitial && m.verbose {
		m.setInfo("Menu reloaded")
	}
	return nil
}

// handleMutationResultMsg closes the modal after a successful save or delete
// and shows the fresh snapshot. A failed mutation keeps a form open so the
// user can retry; the list is left untouched. Only the result of the request
// the open modal is waiting on may close it or release its busy flag; an
// older result still applies its snapshot or shows its error.
func (m *Model) handleMutationResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.MutationResult)
	if !ok {
		return nil
	}
	owned := m.submit.Owns(result.Seq)
	if !owned {
		events.UI.StaleResult(result.ID, result.Seq)
	}
	if owned || !m.submit.Busy() {
		m.clearPending()
	}
	if result.Err != nil {
		events.Action.Error(result.Err)
		if owned {
			m.errMsg = result.Err.Error()
			m.forceClearInfo()
			m.submit.Fail(result.Err)
			if m.mode == ModeConfirm {
				m.closeModal("failed")
			}
		}
		m.showAlert(result.Err.Error())
		return nil
	}
	if owned {
		m.closeModal("saved")
	}
	events.Action.Success(result.Info)
	if result.ReloadErr != nil {
		m.errMsg = result.ReloadErr.Error()
		m.showAlert(result.ReloadErr.Error())
		return nil
	}
	if owned {
		m.errMsg = ""
	}
	m.applySnapshot(result.Snapshot)
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else if owned {
		m.forceClearInfo()
	}
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.clearPending()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		m.showAlert(result.Err.Error())
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

// runAction looks id up in the registry and executes it through the bus.
func (m *Model) runAction(id, target, label string) tea.Cmd {
	if m.loading {
		return nil
	}
	action, ok := m.registry.Find(id)
	if !ok {
		m.errMsg = fmt.Sprintf("unknown action %s", id)
		return nil
	}
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(m.menuContext(), command.Request{ID: id, Label: label, Handler: action, Target: target})
}

func (m *Model) clearPending() {
	m.pendingID = ""
	m.pendingLabel = ""
}

func (m *Model) showAlert(message string) {
	m.alert = message
	events.UI.Alert(message)
}

func (m *Model) handleAlertKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter", "esc", " ":
		events.UI.ModalClose("alert", "dismissed")
		m.alert = ""
	}
	return nil
}

// applySnapshot replaces the store and re-renders every list.
func (m *Model) applySnapshot(snap menu.Snapshot) {
	m.store.Replace(snap)
	m.refresh()
}

// refresh projects the stored snapshot through the current filter. A
// category filter whose slug vanished falls back to All.
func (m *Model) refresh() {
	snap, _ := m.store.Snapshot()
	if m.category != "" {
		if _, ok := snap.Category(m.category); !ok {
			m.category = ""
			events.Filter.Category("")
		}
	}
	m.view = menu.Render(snap, menu.Filter{Category: m.category, Query: m.search.Text})
	m.categories.UpdateItems(categoryListItems(m.view.Categories))
	m.items.UpdateItems(itemListItems(m.view.Items))
	m.syncViewport(m.categories)
	m.syncViewport(m.items)
}

func (m *Model) menuContext() menu.Context {
	snap, _ := m.store.Snapshot()
	return menu.Context{API: m.api, Snapshot: snap}
}
