package events

import "github.com/atomicstack/tower-picker/internal/logging"

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

type fields map[string]interface{}

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", fields{"level": levelID, "item": itemID, "label": label, "filter": filter})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", fields{"level": levelID, "cursor": cursor})
}

func (UITracer) MenuBack(levelID string) {
	logging.Trace("menu.back", fields{"level": levelID})
}

// MenuToggle records a mark flip on a multi-select level.
func (UITracer) MenuToggle(levelID, itemID string, marked bool) {
	logging.Trace("menu.toggle", fields{"level": levelID, "item": itemID, "marked": marked})
}

func (UITracer) MenuMarkAll(levelID string, marked int) {
	logging.Trace("menu.mark-all", fields{"level": levelID, "marked": marked})
}

func (UITracer) Reroll(teamSize int) {
	logging.Trace("menu.reroll", fields{"size": teamSize})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", fields{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", fields{"info": info})
}

// Filter edits carry the level so a trace can be replayed per menu.

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", fields{"level": levelID})
}

func (FilterTracer) Edit(levelID, kind, filter string) {
	logging.Trace("filter."+kind, fields{"level": levelID, "filter": filter})
}

func (FilterTracer) Cursor(levelID, motion string, pos int) {
	logging.Trace("filter.cursor", fields{"level": levelID, "motion": motion, "cursor": pos})
}

func (CommandTracer) Queue(session, id, label string) {
	logging.Trace("command.queue", fields{"session": session, "id": id, "label": label})
}

func (CommandTracer) Skip(session, id string) {
	logging.Trace("command.skip", fields{"session": session, "id": id})
}

func (CommandTracer) NoOp(session, id string) {
	logging.Trace("command.noop", fields{"session": session, "id": id})
}

func (CommandTracer) Result(session, id, msgType string) {
	logging.Trace("command.result", fields{"session": session, "id": id, "msg": msgType})
}

func (CommandTracer) Panic(session, id, value string) {
	logging.Trace("command.panic", fields{"session": session, "id": id, "value": value})
}
