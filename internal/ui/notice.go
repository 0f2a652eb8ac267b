package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeMsg shows Text next to the help line.
type NoticeMsg struct {
	Text  string
	Error bool
}

type clearNoticeMsg struct {
	at time.Time
}

// Notice is a single line message that disappears after a few seconds.
type Notice struct {
	text       string
	isError    bool
	notifiedAt time.Time
}

// Notify returns a command delivering a notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}

// NotifyError returns a command delivering an error notice.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: err.Error(), Error: true}
	}
}

// Update processes incoming messages to modify the notification state.
func (n *Notice) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NoticeMsg:
		n.text = msg.Text
		n.isError = msg.Error
		n.notifiedAt = time.Now()
		at := n.notifiedAt
		return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearNoticeMsg{at: at}
		})
	case clearNoticeMsg:
		if msg.at.Equal(n.notifiedAt) {
			n.text = ""
		}
	}
	return nil
}

// Text returns the active notice and whether it is an error.
func (n *Notice) Text() (string, bool) {
	return n.text, n.isError
}
