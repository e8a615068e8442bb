// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a single-view album browser: a [Model] wraps a read-only
// collection in a bubbles list, one [albumItem] per album in collection
// order. Because the model only ever holds a [collection.Collection]
// capability, any realization (owned, borrowed, cloned, transparent) can be
// browsed without the UI knowing which one it was handed.
//
// Keyboard navigation uses vim-style bindings (j/k, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
