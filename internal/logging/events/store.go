package events

import "github.com/atomicstack/menu-admin/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Reload(reason string) {
	logging.Trace("store.reload", map[string]interface{}{"reason": reason})
}

func (StoreTracer) Replaced(categories, items int) {
	logging.Trace("store.replaced", map[string]interface{}{"categories": categories, "items": items})
}

func (StoreTracer) ReloadFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("store.reload.error", map[string]interface{}{"error": err.Error()})
}
