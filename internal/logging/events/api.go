package events

import "github.com/atomicstack/menu-admin/internal/logging"

type APITracer struct{}

var API = APITracer{}

func (APITracer) Request(requestID, method, url string) {
	logging.Trace("api.request", map[string]interface{}{"id": requestID, "method": method, "url": url})
}

func (APITracer) Response(requestID string, status int) {
	logging.Trace("api.response", map[string]interface{}{"id": requestID, "status": status})
}

func (APITracer) Failure(requestID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("api.failure", map[string]interface{}{"id": requestID, "error": err.Error()})
}

// Served records a request handled by the development backend.
func (APITracer) Served(method, path string, status int, latencyMS int64) {
	logging.Trace("devserver.request", map[string]interface{}{
		"method":     method,
		"path":       path,
		"status":     status,
		"latency_ms": latencyMS,
	})
}
