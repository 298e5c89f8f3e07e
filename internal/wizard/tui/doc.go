// Package tui implements the full-screen router wizard.
//
// The wizard is a single Bubble Tea program with three tabs. The Router tab
// holds the connect form and, once the session is connected, the WiFi form.
// Connect and apply run as tea.Cmds so the form stays responsive while they
// are pending; each button shows a spinner and a progress bar for as long as
// its operation is in flight. A second press of the same button while it is
// pending is rejected with a busy notice, but connect and apply may overlap.
//
// Results and validation failures are queued as notices and shown one at a
// time in a modal that is dismissed with enter or esc.
//
// Key bindings:
//   - tab/shift+tab or ↑/↓: move between fields
//   - enter: connect (router section) or apply (WiFi section)
//   - ctrl+f: search the local network for routers
//   - ctrl+←/ctrl+→ or f1/f2: switch tabs
//   - esc or ctrl+c: quit
package tui
