// Package command runs menu actions as Bubble Tea commands.
package command

import (
	"fmt"

	"github.com/atomicstack/tower-picker/internal/logging"
	"github.com/atomicstack/tower-picker/internal/logging/events"
	"github.com/atomicstack/tower-picker/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus runs actions off the UI goroutine and traces each one under the
// session it belongs to.
type Bus struct {
	session string
}

// New returns a bus tracing under session.
func New(session string) *Bus {
	return &Bus{session: session}
}

// Execute wraps req in a command. A panicking action is reported as a
// failed menu.ActionResult so the UI stays usable.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	if req.Handler == nil {
		events.Command.Skip(b.session, req.ID)
		return nil
	}
	events.Command.Queue(b.session, req.ID, req.Label)
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("%s failed: %v", req.ID, r)
				logging.Error(err)
				events.Command.Panic(b.session, req.ID, fmt.Sprint(r))
				msg = menu.ActionResult{Err: err}
			}
		}()
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(b.session, req.ID)
			return nil
		}
		msg = cmd()
		events.Command.Result(b.session, req.ID, fmt.Sprintf("%T", msg))
		return msg
	}
}
