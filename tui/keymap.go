package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit, back,
	toggleMode, nextField, prevField,
	copyURL, openURL, acceptSuggestion, showDocs,
	prevTab, nextTab, tab1, tab2, tab3,
	up, down, pageUp, pageDown,
	copySnippet, tryIt, openTryIt,
	showHelp, playerHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		toggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "movie/series"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		copyURL: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp(style.Fg(color.Orange)("ctrl+y"), style.Fg(color.Orange)("copy url")),
		),
		openURL: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "preview in browser"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "accept suggestion"),
		),
		showDocs: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "api docs"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev tab"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next tab"),
		),
		tab1: key.NewBinding(key.WithKeys("1")),
		tab2: key.NewBinding(key.WithKeys("2")),
		tab3: key.NewBinding(key.WithKeys("3")),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
		copySnippet: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("copy")),
		),
		tryIt: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "try it"),
		),
		openTryIt: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open preview"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		playerHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case playerState:
		return h(k.copyURL, k.openURL, k.toggleMode, k.showDocs, k.playerHelp),
			h(k.copyURL, k.openURL, k.toggleMode, k.nextField, k.prevField, k.acceptSuggestion, k.showDocs, k.back, k.forceQuit)
	case docsState:
		return h(k.copySnippet, k.prevTab, k.nextTab, k.tryIt, k.back, k.showHelp),
			h(k.copySnippet, k.up, k.down, k.prevTab, k.nextTab, k.tryIt, k.openTryIt, k.pageUp, k.pageDown, k.back, k.quit)
	default:
		return h(), h()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
