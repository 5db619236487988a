package events

import "github.com/atomicstack/tower-picker/internal/logging"

type SelectionTracer struct{}

type TeamTracer struct{}

var (
	Selection = SelectionTracer{}
	Team      = TeamTracer{}
)

func (SelectionTracer) Categories(sessionID string, categories []string, available int) {
	logging.Trace("selection.categories", map[string]interface{}{
		"session":    sessionID,
		"categories": categories,
		"available":  available,
	})
}

func (SelectionTracer) Towers(sessionID string, selected int) {
	logging.Trace("selection.towers", map[string]interface{}{"session": sessionID, "selected": selected})
}

func (SelectionTracer) Reset(sessionID string) {
	logging.Trace("selection.reset", map[string]interface{}{"session": sessionID})
}

// Rejected records a filter change that failed validation; field is
// "categories" or "towers".
func (SelectionTracer) Rejected(sessionID, field, value string) {
	logging.Trace("selection.rejected", map[string]interface{}{
		"session": sessionID,
		"field":   field,
		"value":   value,
	})
}

func (TeamTracer) Generated(sessionID string, team []string) {
	logging.Trace("team.generate", map[string]interface{}{"session": sessionID, "team": team})
}

func (TeamTracer) Rejected(sessionID string, size, pool int) {
	logging.Trace("team.rejected", map[string]interface{}{"session": sessionID, "size": size, "pool": pool})
}

func (TeamTracer) Copied(count int) {
	logging.Trace("team.copy", map[string]interface{}{"count": count})
}

func (TeamTracer) Size(size int) {
	logging.Trace("team.size", map[string]interface{}{"size": size})
}
