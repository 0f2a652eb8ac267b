// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	playerState state = iota
	docsState
)

// field identifies a text input of the player form.
type field int

const (
	movieField field = iota
	tvField
	seasonField
	episodeField
)
