// Package ui provides the terminal user interface for shelf.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never talks to the backend directly:
// every user action is handed to an Actions implementation (the shelf
// controller) as a tea.Cmd, and the controller renders its outcome into a
// state.Store. The model re-reads the store after each action and on every
// tick, so screen content always reflects the last render instruction.
//
// # Package Structure
//
//   - app.go: Model, message loop, view switching and action commands
//   - header.go: header, command bar, alert line and the titled box frame
//   - search.go: query input and search result cards
//   - form.go: the four-field save form
//   - books.go: My Books list with mark-read and delete
//   - activity.go: tail of the application log
//   - modal.go, help.go: delete confirmation and the help overlay
//   - theme.go, keys.go: color themes and key bindings
//
// # Input Ownership
//
// While the query input or a form field has focus, letters are typed into it.
// Only ctrl+c, tab, enter, esc and the arrow keys are interpreted there. Outside
// inputs, single letters switch views and run list actions.
//
// # Key Bindings
//
//   - s/f/l/a: Search, Add Book, My Books, Activity
//   - Tab / Shift+Tab: Cycle views
//   - /: Edit the search query
//   - Enter: Search, use the selected result, or save the form
//   - r: Mark the selected book as read
//   - d: Delete the selected book after confirmation
//   - R: Reload My Books
//   - Space: Toggle activity auto-follow
//   - T: Cycle theme
//   - e or Ctrl+C: Exit
package ui
