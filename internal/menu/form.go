package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/logging/events"
)

const (
	fieldCategory = "category_slug"
	fieldNameUZ   = "name_uz"
	fieldNameRU   = "name_ru"
	fieldSlug     = "slug"
	fieldPrice    = "price"
	fieldImage    = "image"
	fieldDescUZ   = "desc_uz"
	fieldDescRU   = "desc_ru"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldArea
	fieldSelect
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

type field struct {
	key      string
	label    string
	kind     fieldKind
	input    textinput.Model
	area     textarea.Model
	options  []Option
	selected int
}

// FieldView is what the UI needs to draw one field.
type FieldView struct {
	Label   string
	Input   string
	Focused bool
}

// Form is the single modal form. Its shape depends on the action it was
// opened for.
type Form struct {
	ctx    Context
	action string
	target string
	itemID int64
	title  string
	help   string
	fields []*field
	focus  int
}

func newTextField(key, label, placeholder, value string) *field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return &field{key: key, label: label, kind: fieldText, input: ti}
}

func newAreaField(key, label, value string) *field {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetWidth(48)
	ta.SetHeight(3)
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.SetValue(value)
	return &field{key: key, label: label, kind: fieldArea, area: ta}
}

func newSelectField(key, label string, options []Option, value string) *field {
	f := &field{key: key, label: label, kind: fieldSelect, options: options}
	for i, opt := range options {
		if opt.Value == value {
			f.selected = i
			break
		}
	}
	return f
}

func categoryOptions(s Snapshot) []Option {
	opts := make([]Option, 0, len(s.Categories))
	for _, c := range s.Categories {
		opts = append(opts, Option{Value: c.Slug, Label: c.NameUZ})
	}
	return opts
}

// NewForm builds the form for prompt, prefilled from the snapshot for the
// edit flows.
func NewForm(prompt FormPrompt) (*Form, error) {
	f := &Form{ctx: prompt.Context, action: prompt.Action, target: prompt.Target}
	snap := prompt.Context.Snapshot
	switch prompt.Action {
	case ActionCategoryAdd:
		f.title = "Add Category"
		f.fields = []*field{
			newTextField(fieldNameUZ, "Name UZ", "Burgerlar", ""),
			newTextField(fieldNameRU, "Name RU", "Бургеры", ""),
			newTextField(fieldSlug, "Slug (optional)", "burgers", ""),
		}
	case ActionCategoryEdit:
		c, ok := snap.Category(prompt.Target)
		if !ok {
			return nil, ErrCategoryNotFound
		}
		f.title = "Edit Category"
		f.fields = []*field{
			newTextField(fieldNameUZ, "Name UZ", "", c.NameUZ),
			newTextField(fieldNameRU, "Name RU", "", c.NameRU),
		}
	case ActionItemAdd:
		f.title = "Add Item"
		f.fields = []*field{
			newSelectField(fieldCategory, "Category", categoryOptions(snap), ""),
			newTextField(fieldNameUZ, "Name UZ", "", ""),
			newTextField(fieldNameRU, "Name RU", "", ""),
			newTextField(fieldPrice, "Price", "0", "0"),
			newTextField(fieldImage, "Image (file path)", "", ""),
			newAreaField(fieldDescUZ, "Desc UZ", ""),
			newAreaField(fieldDescRU, "Desc RU", ""),
		}
	case ActionItemEdit:
		id, err := parseItemID(prompt.Target)
		if err != nil {
			return nil, err
		}
		it, ok := snap.Item(id)
		if !ok {
			return nil, ErrItemNotFound
		}
		opts := categoryOptions(snap)
		if _, ok := snap.Category(it.CategorySlug); !ok {
			opts = append([]Option{{Value: it.CategorySlug, Label: it.CategorySlug}}, opts...)
		}
		f.itemID = id
		f.title = "Edit Item"
		f.fields = []*field{
			newSelectField(fieldCategory, "Category", opts, it.CategorySlug),
			newTextField(fieldNameUZ, "Name UZ", "", it.NameUZ),
			newTextField(fieldNameRU, "Name RU", "", it.NameRU),
			newTextField(fieldPrice, "Price", "0", strconv.FormatInt(it.Price, 10)),
			newTextField(fieldImage, "New Image (optional)", "", ""),
			newAreaField(fieldDescUZ, "Desc UZ", it.DescUZ),
			newAreaField(fieldDescRU, "Desc RU", it.DescRU),
		}
	default:
		return nil, fmt.Errorf("unknown form action %q", prompt.Action)
	}
	f.help = "Tab/Shift+Tab to move. Ctrl+S to save. Esc to close."
	f.setFocus(0)
	return f, nil
}

func (f *Form) Context() Context { return f.ctx }
func (f *Form) ActionID() string { return f.action }
func (f *Form) Target() string   { return f.target }
func (f *Form) Title() string    { return f.title }
func (f *Form) Help() string     { return f.help }

func (f *Form) PendingLabel() string {
	if name := f.Value(fieldNameUZ); name != "" {
		return fmt.Sprintf("%s: %s", f.title, name)
	}
	return f.title
}

// Value returns the trimmed text of key, or the selected option value for
// selects. Descriptions are returned verbatim.
func (f *Form) Value(key string) string {
	fd := f.field(key)
	if fd == nil {
		return ""
	}
	switch fd.kind {
	case fieldSelect:
		if fd.selected < 0 || fd.selected >= len(fd.options) {
			return ""
		}
		return fd.options[fd.selected].Value
	case fieldArea:
		return fd.area.Value()
	default:
		return strings.TrimSpace(fd.input.Value())
	}
}

// SetValue replaces the content of a text field, selects the matching option
// of a select field.
func (f *Form) SetValue(key, value string) {
	fd := f.field(key)
	if fd == nil {
		return
	}
	switch fd.kind {
	case fieldSelect:
		for i, opt := range fd.options {
			if opt.Value == value {
				fd.selected = i
				return
			}
		}
	case fieldArea:
		fd.area.SetValue(value)
	default:
		fd.input.SetValue(value)
	}
}

// Fields renders every field for the modal body.
func (f *Form) Fields() []FieldView {
	views := make([]FieldView, 0, len(f.fields))
	for i, fd := range f.fields {
		views = append(views, FieldView{Label: fd.label, Input: fd.view(), Focused: i == f.focus})
	}
	return views
}

// Focused returns the key of the field holding focus.
func (f *Form) Focused() string {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return ""
	}
	return f.fields[f.focus].key
}

// Update routes msg to the focused field. done reports a save request, cancel
// a close request. Neither closes the form by itself.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "esc":
		f.traceCancel(events.FormReasonEscape)
		return nil, false, true
	case "ctrl+s":
		return nil, true, false
	case "tab", "down":
		if key.String() == "down" && f.current().kind == fieldArea {
			break
		}
		return f.setFocus(f.focus + 1), false, false
	case "shift+tab", "up":
		if key.String() == "up" && f.current().kind == fieldArea {
			break
		}
		return f.setFocus(f.focus - 1), false, false
	case "enter":
		if f.current().kind == fieldArea {
			break
		}
		if f.focus == len(f.fields)-1 {
			return nil, true, false
		}
		return f.setFocus(f.focus + 1), false, false
	}
	current := f.current()
	switch current.kind {
	case fieldSelect:
		switch key.String() {
		case "left", "h":
			current.cycle(-1)
		case "right", "l", " ":
			current.cycle(1)
		}
		return nil, false, false
	case fieldArea:
		var cmd tea.Cmd
		current.area, cmd = current.area.Update(msg)
		return cmd, false, false
	default:
		var cmd tea.Cmd
		current.input, cmd = current.input.Update(msg)
		return cmd, false, false
	}
}

// Submit validates the form and returns the command that performs the save.
// A validation error means nothing is sent.
func (f *Form) Submit() (tea.Cmd, error) {
	nameUZ := f.Value(fieldNameUZ)
	nameRU := f.Value(fieldNameRU)
	switch f.action {
	case ActionCategoryAdd:
		if nameUZ == "" {
			f.traceCancel(events.FormReasonValidation)
			return nil, ErrNameUZRequired
		}
		return CreateCategoryCommand(f.ctx, CategoryInput{
			NameUZ: nameUZ,
			NameRU: optional(nameRU),
			Slug:   optional(f.Value(fieldSlug)),
		}), nil
	case ActionCategoryEdit:
		if nameUZ == "" {
			f.traceCancel(events.FormReasonValidation)
			return nil, ErrNameUZRequired
		}
		return UpdateCategoryCommand(f.ctx, f.target, CategoryUpdate{
			NameUZ: nameUZ,
			NameRU: optional(nameRU),
		}), nil
	case ActionItemAdd:
		if nameUZ == "" || nameRU == "" {
			f.traceCancel(events.FormReasonValidation)
			return nil, ErrNamesRequired
		}
		return CreateItemCommand(f.ctx, ItemInput{
			CategorySlug: f.Value(fieldCategory),
			NameUZ:       nameUZ,
			NameRU:       nameRU,
			Price:        ParsePrice(f.Value(fieldPrice)),
			DescUZ:       f.Value(fieldDescUZ),
			DescRU:       f.Value(fieldDescRU),
		}, f.Value(fieldImage)), nil
	case ActionItemEdit:
		categorySlug := f.Value(fieldCategory)
		price := ParsePrice(f.Value(fieldPrice))
		descUZ := f.Value(fieldDescUZ)
		descRU := f.Value(fieldDescRU)
		return UpdateItemCommand(f.ctx, f.itemID, ItemPatch{
			CategorySlug: &categorySlug,
			NameUZ:       &nameUZ,
			NameRU:       &nameRU,
			Price:        &price,
			DescUZ:       &descUZ,
			DescRU:       &descRU,
		}, f.Value(fieldImage)), nil
	default:
		return nil, fmt.Errorf("unknown form action %q", f.action)
	}
}

func (f *Form) traceCancel(reason events.FormReason) {
	switch f.action {
	case ActionItemAdd, ActionItemEdit:
		events.Item.Cancel(reason)
	default:
		events.Category.Cancel(reason)
	}
}

func (f *Form) field(key string) *field {
	for _, fd := range f.fields {
		if fd.key == key {
			return fd
		}
	}
	return nil
}

func (f *Form) current() *field {
	return f.fields[f.focus]
}

func (f *Form) setFocus(idx int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	idx = ((idx % n) + n) % n
	for i, fd := range f.fields {
		if i == idx {
			continue
		}
		fd.blur()
	}
	f.focus = idx
	return f.fields[idx].focus()
}

func (fd *field) focus() tea.Cmd {
	switch fd.kind {
	case fieldArea:
		return fd.area.Focus()
	case fieldText:
		return fd.input.Focus()
	}
	return nil
}

func (fd *field) blur() {
	switch fd.kind {
	case fieldArea:
		fd.area.Blur()
	case fieldText:
		fd.input.Blur()
	}
}

func (fd *field) cycle(delta int) {
	n := len(fd.options)
	if n == 0 {
		return
	}
	fd.selected = ((fd.selected+delta)%n + n) % n
}

func (fd *field) view() string {
	switch fd.kind {
	case fieldSelect:
		if len(fd.options) == 0 {
			return "‹ (no categories) ›"
		}
		opt := fd.options[fd.selected]
		return fmt.Sprintf("‹ %s (%s) ›", opt.Label, opt.Value)
	case fieldArea:
		return fd.area.View()
	default:
		return fd.input.View()
	}
}
