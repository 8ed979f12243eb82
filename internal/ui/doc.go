// Package ui contains the Bubble Tea program that powers the menu admin
// console. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, input, rendering, and modal state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses go to the blocking alert first, then to the open form or
//     delete confirmation. When no modal is open, the message is routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (navigation for key presses, commands.go for results).
//   - Navigation helpers (navigation.go) move focus between the category and
//     item lists and start actions. Search helpers (input.go) keep text entry
//     isolated from the event loop.
//
// State ownership:
//   - Cursor and viewport state lives in internal/ui/state.List; the open
//     modal's busy flag is a state.Submit.
//   - The menu snapshot is held by internal/state and only replaced, never
//     edited. menu.Render projects it through the category filter and search.
//   - Actions run through the internal/ui/command bus; every network call is
//     a tea.Cmd that reports back as a menu.MutationResult or
//     menu.SnapshotLoaded.
//
// Backend interactions:
//   - With auto refresh enabled a backend.Watcher polls the menu; Update waits
//     for its events and the dispatcher swaps the snapshot in.
package ui
