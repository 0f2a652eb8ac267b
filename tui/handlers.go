package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidrock-cli/vidrock/clipboard"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/internal/ui"
	"github.com/vidrock-cli/vidrock/log"
	"github.com/vidrock-cli/vidrock/open"
	"github.com/vidrock-cli/vidrock/recent"
)

// Side effects are package variables so tests can observe them.
var (
	copyText  = clipboard.Copy
	startOpen = open.Start
)

func openInBrowser(u string) tea.Cmd {
	return func() tea.Msg {
		if err := startOpen(u); err != nil {
			log.Errorf("open %s: %v", u, err)
			return ui.NotifyError(fmt.Errorf("could not open the browser: %w", err))()
		}
		return ui.Notify("Opened " + u)()
	}
}

func remember(sel embed.Selection) tea.Cmd {
	return func() tea.Msg {
		if err := recent.RememberSelection(sel); err != nil {
			log.Warnf("remember %s %s: %v", sel.Mode, sel.ID(), err)
		}
		return nil
	}
}
