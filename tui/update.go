package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidrock-cli/vidrock/clipboard"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/internal/ui"
	"github.com/vidrock-cli/vidrock/recent"
	"github.com/vidrock-cli/vidrock/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Acknowledgments and notices see every message first.
	if ackCmd := b.ack.Update(msg); ackCmd != nil {
		cmd = tea.Batch(cmd, ackCmd)
	}
	if noticeCmd := b.notice.Update(msg); noticeCmd != nil {
		cmd = tea.Batch(cmd, noticeCmd)
	}

	switch msg := msg.(type) {
	case clipboard.CopiedMsg, ui.AckExpiredMsg:
		if b.state == docsState {
			b.refreshDocs()
		}
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case playerState:
		stateCmd = b.updatePlayer(msg)
	case docsState:
		stateCmd = b.updateDocs(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.toggleMode):
			b.selection = b.selection.WithMode(b.selection.Mode.Toggle())
			b.setFocus(0)
			b.sync()
			b.suggest()
			return nil
		case bubblesKey.Matches(msg, b.keymap.nextField):
			b.setFocus(b.focus + 1)
			b.suggest()
			return nil
		case bubblesKey.Matches(msg, b.keymap.prevField):
			b.setFocus(b.focus - 1)
			b.suggest()
			return nil
		case bubblesKey.Matches(msg, b.keymap.copyURL):
			return tea.Batch(copyText(urlTarget, b.url), remember(b.selection))
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return tea.Batch(openInBrowser(b.url), remember(b.selection))
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion) && b.suggestion.IsPresent():
			input := &b.inputsC[b.focused()]
			input.SetValue(b.suggestion.MustGet())
			input.CursorEnd()
			b.suggestion = mo.None[string]()
			b.sync()
			return nil
		case bubblesKey.Matches(msg, b.keymap.showDocs):
			b.newState(docsState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.playerHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return nil
		}
	}

	var cmd tea.Cmd
	input := &b.inputsC[b.focused()]
	*input, cmd = input.Update(msg)

	b.sync()
	b.suggest()
	return cmd
}

// suggest looks up a recent identifier for the focused input.
func (b *statefulBubble) suggest() {
	f := b.focused()
	value := b.inputsC[f].Value()
	if (f != movieField && f != tvField) || value == "" {
		b.suggestion = mo.None[string]()
		return
	}
	b.suggestion = recent.Suggest(b.selection.Mode, value)
}

func (b *statefulBubble) updateDocs(msg tea.Msg) tea.Cmd {
	snippets := b.snippets()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if !b.previousState() {
				return tea.Quit
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.prevTab):
			b.selectTab(b.tab.Prev())
			return nil
		case bubblesKey.Matches(msg, b.keymap.nextTab):
			b.selectTab(b.tab.Next())
			return nil
		case bubblesKey.Matches(msg, b.keymap.tab1):
			b.selectTab(docs.Embedding)
			return nil
		case bubblesKey.Matches(msg, b.keymap.tab2):
			b.selectTab(docs.Customization)
			return nil
		case bubblesKey.Matches(msg, b.keymap.tab3):
			b.selectTab(docs.WatchProgress)
			return nil
		case bubblesKey.Matches(msg, b.keymap.up):
			b.cursor = util.Clamp(b.cursor-1, 0, lo.Max([]int{len(snippets) - 1, 0}))
			b.refreshDocs()
			return nil
		case bubblesKey.Matches(msg, b.keymap.down):
			b.cursor = util.Clamp(b.cursor+1, 0, lo.Max([]int{len(snippets) - 1, 0}))
			b.refreshDocs()
			return nil
		case bubblesKey.Matches(msg, b.keymap.copySnippet):
			if b.cursor < len(snippets) {
				s := snippets[b.cursor]
				return copyText(s.ID, s.Text)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.tryIt):
			if _, ok := b.tryItURL(); ok {
				b.tryIt = !b.tryIt
				b.refreshDocs()
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.openTryIt):
			if u, ok := b.tryItURL(); ok {
				return openInBrowser(u)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return nil
		}
	}

	var cmd tea.Cmd
	b.viewportC, cmd = b.viewportC.Update(msg)
	return cmd
}

// selectTab switches the documentation tab and resets the cursor.
func (b *statefulBubble) selectTab(tab docs.Tab) {
	b.tab = tab
	b.cursor = 0
	b.tryIt = false
	b.viewportC.GotoTop()
	b.refreshDocs()
}

// tryItURL is the previewable URL of the active tab.
func (b *statefulBubble) tryItURL() (string, bool) {
	s, ok := lo.Find(b.snippets(), func(s docs.Snippet) bool {
		return s.TryIt != ""
	})
	return s.TryIt, ok
}
