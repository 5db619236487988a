package events

import "github.com/atomicstack/tower-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(sessionID string, err error) {
	payload := map[string]interface{}{"session": sessionID}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}
