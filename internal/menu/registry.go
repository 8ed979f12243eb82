package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging/events"
)

const (
	ActionCategoryAdd    = "category:add"
	ActionCategoryEdit   = "category:edit"
	ActionCategoryDelete = "category:delete"
	ActionItemAdd        = "item:add"
	ActionItemEdit       = "item:edit"
	ActionItemDelete     = "item:delete"
	ActionReload         = "menu:reload"
)

// Action starts a flow for target, which is a category slug, an item id or
// empty when the flow has no subject.
type Action func(ctx Context, target string) tea.Cmd

// FormPrompt asks the UI to open the modal with the form for Action.
type FormPrompt struct {
	Context Context
	Action  string
	Target  string
}

// ConfirmPrompt asks the UI for a yes/no answer before running Action.
type ConfirmPrompt struct {
	Context Context
	Action  string
	Target  string
	Message string
}

// Registry maps action ids to handlers.
type Registry struct {
	actions map[string]Action
}

// BuildRegistry wires every console action.
func BuildRegistry() *Registry {
	return &Registry{actions: ActionHandlers()}
}

// ActionHandlers returns the handler table keyed by action id.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		ActionCategoryAdd:    CategoryAddAction,
		ActionCategoryEdit:   CategoryEditAction,
		ActionCategoryDelete: CategoryDeleteAction,
		ActionItemAdd:        ItemAddAction,
		ActionItemEdit:       ItemEditAction,
		ActionItemDelete:     ItemDeleteAction,
		ActionReload:         ReloadAction,
	}
}

// Find locates an action by id.
func (r *Registry) Find(id string) (Action, bool) {
	if r == nil {
		return nil, false
	}
	action, ok := r.actions[id]
	return action, ok
}

// IDs returns the registered action ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func CategoryAddAction(ctx Context, _ string) tea.Cmd {
	return func() tea.Msg {
		events.Category.AddPrompt(len(ctx.Snapshot.Categories))
		return FormPrompt{Context: ctx, Action: ActionCategoryAdd}
	}
}

func CategoryEditAction(ctx Context, slug string) tea.Cmd {
	if _, ok := ctx.Snapshot.Category(slug); !ok {
		return func() tea.Msg { return ActionResult{Err: ErrCategoryNotFound} }
	}
	return func() tea.Msg {
		events.Category.EditPrompt(slug)
		return FormPrompt{Context: ctx, Action: ActionCategoryEdit, Target: slug}
	}
}

func CategoryDeleteAction(ctx Context, slug string) tea.Cmd {
	c, ok := ctx.Snapshot.Category(slug)
	if !ok {
		return func() tea.Msg { return ActionResult{Err: ErrCategoryNotFound} }
	}
	return func() tea.Msg {
		events.Category.DeletePrompt(slug)
		return ConfirmPrompt{
			Context: ctx,
			Action:  ActionCategoryDelete,
			Target:  slug,
			Message: fmt.Sprintf("Delete category %s? Its items will be deleted too.", c.NameUZ),
		}
	}
}

func ItemAddAction(ctx Context, _ string) tea.Cmd {
	return func() tea.Msg {
		events.Item.AddPrompt(len(ctx.Snapshot.Categories))
		return FormPrompt{Context: ctx, Action: ActionItemAdd}
	}
}

func ItemEditAction(ctx Context, target string) tea.Cmd {
	id, err := parseItemID(target)
	if err != nil {
		return func() tea.Msg { return ActionResult{Err: err} }
	}
	if _, ok := ctx.Snapshot.Item(id); !ok {
		return func() tea.Msg { return ActionResult{Err: ErrItemNotFound} }
	}
	return func() tea.Msg {
		events.Item.EditPrompt(id)
		return FormPrompt{Context: ctx, Action: ActionItemEdit, Target: target}
	}
}

func ItemDeleteAction(ctx Context, target string) tea.Cmd {
	id, err := parseItemID(target)
	if err != nil {
		return func() tea.Msg { return ActionResult{Err: err} }
	}
	it, ok := ctx.Snapshot.Item(id)
	if !ok {
		return func() tea.Msg { return ActionResult{Err: ErrItemNotFound} }
	}
	return func() tea.Msg {
		events.Item.DeletePrompt(id)
		return ConfirmPrompt{
			Context: ctx,
			Action:  ActionItemDelete,
			Target:  target,
			Message: fmt.Sprintf("Delete item %s?", it.NameUZ),
		}
	}
}

func ReloadAction(ctx Context, _ string) tea.Cmd {
	return ReloadCommand(ctx.API, "manual")
}

// ConfirmedCommand returns the command to run once prompt was accepted.
func ConfirmedCommand(prompt ConfirmPrompt) tea.Cmd {
	switch prompt.Action {
	case ActionCategoryDelete:
		return DeleteCategoryCommand(prompt.Context, prompt.Target)
	case ActionItemDelete:
		id, err := parseItemID(prompt.Target)
		if err != nil {
			return func() tea.Msg { return ActionResult{Err: err} }
		}
		return DeleteItemCommand(prompt.Context, id)
	default:
		return nil
	}
}

func parseItemID(target string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(target), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", target)
	}
	return id, nil
}
