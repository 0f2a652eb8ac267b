// Package clipboard copies literal text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidrock-cli/vidrock/log"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// CopiedMsg reports a successful copy of the text bound to Target.
type CopiedMsg struct {
	Target string
}

// Write puts text on the clipboard with a single call.
func Write(text string) error {
	return writeAll(text)
}

// Copy returns a command that writes text and emits CopiedMsg on success.
// A failed write is logged and produces no message.
func Copy(target, text string) tea.Cmd {
	return func() tea.Msg {
		if err := Write(text); err != nil {
			log.Errorf("clipboard: copy %s: %v", target, err)
			return nil
		}
		return CopiedMsg{Target: target}
	}
}

// Unsupported reports whether no clipboard utility is available.
func Unsupported() bool {
	return clipboard.Unsupported
}
