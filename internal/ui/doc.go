// Package ui implements a full-screen student browser using bubbletea's Elm architecture.
//
// Views:
//  1. [ListView] : Browse and filter students
//  2. [DetailView] : Show every field of the selected student
//  3. [ConfirmView] : Confirm deletion of the selected student
//
// Repository calls run as [tea.Cmd] functions and report back through the [Msg] union type,
// so the update loop never blocks on the database.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, d, y/n, r, ?, q) with contextual
// help rendered by charmbracelet/bubbles/help.
package ui
