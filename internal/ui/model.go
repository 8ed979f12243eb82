package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/backend"
	"github.com/atomicstack/menu-admin/internal/data/dispatcher"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/state"
	"github.com/atomicstack/menu-admin/internal/theme"
	"github.com/atomicstack/menu-admin/internal/ui/command"
	uistate "github.com/atomicstack/menu-admin/internal/ui/state"
)

type list = uistate.List

type Mode int

const (
	ModeList Mode = iota
	ModeForm
	ModeConfirm
)

const (
	listCategories = "categories"
	listItems      = "items"

	reloadInitial = "initial"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the menu admin console.
type Model struct {
	categories *list
	items      *list
	focus      string
	search     uistate.Search
	category   string
	view       menu.View

	loading          bool
	pendingID        string
	pendingLabel     string
	errMsg           string
	infoMsg          string
	infoExpire       time.Time
	alert            string
	width            int
	height           int
	fixedWidth       bool
	fixedHeight      bool
	backend          *backend.Watcher
	backendLastErr   string
	refreshRequested bool
	showFooter       bool
	verbose          bool

	form    *menu.Form
	confirm *menu.ConfirmPrompt
	submit  uistate.Submit

	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler

	api        menu.Gateway
	registry   *menu.Registry
	bus        *command.Bus
	mode       Mode
	store      state.SnapshotStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the console for api. A nil watcher disables auto
// refresh.
func NewModel(api menu.Gateway, width, height int, showFooter bool, verbose bool, watcher *backend.Watcher) *Model {
	store := state.NewSnapshotStore()
	m := &Model{
		categories: uistate.NewList(listCategories),
		items:      uistate.NewList(listItems),
		focus:      listItems,
		loading:    true,
		api:        api,
		registry:   menu.BuildRegistry(),
		bus:        command.New(),
		backend:    watcher,
		showFooter: showFooter,
		verbose:    verbose,
		mode:       ModeList,
		store:      store,
		dispatcher: dispatcher.New(store),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{menu.ReloadCommand(m.api, reloadInitial)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveModal(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, finishUpdate(cmds)
}

// handleActiveModal gives key presses to the alert, the form or the
// confirmation, in that order. Everything else goes through the registry so
// results keep arriving while a modal is open.
func (m *Model) handleActiveModal(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	if m.alert != "" {
		return true, m.handleAlertKey(key)
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(key)
	case ModeConfirm:
		return m.handleConfirmKey(key)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(menu.SnapshotLoaded{}): m.handleSnapshotLoadedMsg,
		reflect.TypeOf(menu.MutationResult{}): m.handleMutationResultMsg,
		reflect.TypeOf(menu.ActionResult{}):   m.handleActionResultMsg,
		reflect.TypeOf(menu.FormPrompt{}):     m.handleFormPromptMsg,
		reflect.TypeOf(menu.ConfirmPrompt{}):  m.handleConfirmPromptMsg,
		reflect.TypeOf(backendEventMsg{}):     m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):      m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which surface currently owns the keyboard.
func (m *Model) Mode() Mode { return m.mode }

// Alert returns the message of the blocking alert, if one is shown.
func (m *Model) Alert() string { return m.alert }

// Snapshot returns the menu the console is showing.
func (m *Model) Snapshot() (menu.Snapshot, bool) { return m.store.Snapshot() }

// Form returns the open form, or nil.
func (m *Model) Form() *menu.Form { return m.form }

// Rendered returns the current projection of the snapshot.
func (m *Model) Rendered() menu.View { return m.view }
