package events

import "github.com/atomicstack/menu-admin/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(list string) {
	logging.Trace("ui.focus", map[string]interface{}{"list": list})
}

func (UITracer) Cursor(list string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"list": list, "cursor": cursor})
}

func (UITracer) ModalOpen(title string) {
	logging.Trace("ui.modal.open", map[string]interface{}{"title": title})
}

func (UITracer) ModalClose(title, reason string) {
	logging.Trace("ui.modal.close", map[string]interface{}{"title": title, "reason": reason})
}

func (UITracer) Alert(message string) {
	logging.Trace("ui.alert", map[string]interface{}{"message": message})
}

func (UITracer) SubmitIgnored(id string) {
	logging.Trace("ui.submit.ignored", map[string]interface{}{"id": id})
}

func (UITracer) StaleResult(id string, seq uint64) {
	logging.Trace("ui.result.stale", map[string]interface{}{"id": id, "seq": seq})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Category(slug string) {
	logging.Trace("filter.category", map[string]interface{}{"category": slug})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
