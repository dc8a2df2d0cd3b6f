// Package ui provides the terminal user interface for the Duet application.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program: a single Model value, an Update function
// that folds messages into the next Model, and a View function that projects
// the Model to a frame. Rendering is pure; drawing the same Model twice
// yields the same screen, so a redraw is always safe.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, Update loop, key routing, and the main Run function
//   - commands.go: tea.Cmd constructors, one per service command, plus their messages
//   - mainpage.go: The "Us" page with partner card, relationship stats, and cloud link
//   - wishlist.go: The two-tab wishlist page
//   - modal.go: Confirmation and text-input overlays
//   - header.go: Top bar and status line
//   - status.go: Failure-to-text mapping for the status line
//   - help.go: Key binding reference overlay
//   - theme.go: Color themes and Lipgloss style construction
//
// # Command Flow
//
// Every edit follows the same confirm-before-apply sequence:
//
//  1. A key handler returns a tea.Cmd that performs one service round trip
//  2. Bubble Tea runs the command on its own goroutine
//  3. On success the command emits its message, Update applies the matching
//     state.Store mutator, and the view re-renders from a fresh snapshot
//  4. On failure a commandFailedMsg lands instead; the store is untouched
//     and the status line explains what happened
//
// Commands in flight are independent and resolve in completion order, not
// submission order. Store mutators are idempotent and ignore unknown ids,
// so late completions cannot corrupt the snapshot.
//
// # Navigation
//
// Two pages (Us, Wishlists) toggled with tab; the wishlist page has two
// tabs (partner's list, your own). Switching pages or tabs is purely local
// and never triggers a round trip. Overlays (help, confirm, prompt) capture
// all input while open.
//
// # External Dependencies
//
//   - state.Store: The authoritative snapshot the view is projected from
//   - fambot: Service client and error taxonomy
//   - prefs: Theme persistence when the user cycles themes
//   - browser, clipboard: Link opening and copying
package ui
