// Package ui contains the Bubble Tea program that drives the tower picker.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, input, rendering, and forms.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the team size form is open, Update forwards messages to it.
//     Otherwise each tea.Msg is routed through a typed handler registry so
//     it is handled by one focused function.
//   - Navigation helpers (navigation.go) manage the stack of menu levels,
//     cursor movement, and multi-select marks. Filter helpers (input.go)
//     keep text entry isolated from the event loop.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering, marks, and viewport calculations.
//   - Filter selections live in a selection.Session owned by the caller.
//     Menu loaders read it through snapshots and menu actions change it
//     through the selection.Manager, so the UI never edits it directly.
//   - Actions run asynchronously through the internal/ui/command bus and
//     report back with menu.ActionResult, menu.TeamResult, or a prompt.
//
// On a successful action the stack unwinds to the root menu, whose labels
// are rebuilt from the session. Failed actions keep the current level and
// its marks so the user can correct them.
package ui
