package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/embed"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Selection embed.Selection
	// Params are appended to the derived URL.
	Params embed.Options
	Tab    docs.Tab
	// Docs starts on the documentation instead of the player.
	Docs bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	if options.Docs {
		bubble.setState(docsState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}
