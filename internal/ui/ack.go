// Package ui holds transient terminal state: copy acknowledgments and one-line notices.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/clipboard"
	"github.com/vidrock-cli/vidrock/key"
)

// DefaultAckDuration is used when clipboard.ack_seconds is not positive.
const DefaultAckDuration = 2 * time.Second

// AckExpiredMsg clears the acknowledgment of Target if nothing newer was copied since.
type AckExpiredMsg struct {
	Target     string
	Generation uint64
}

// Ack tracks which copy targets were copied recently.
// The zero value acknowledges for DefaultAckDuration.
type Ack struct {
	Duration time.Duration

	generation uint64
	active     map[string]uint64
}

// NewAck reads the acknowledgment duration from the configuration.
func NewAck() *Ack {
	d := time.Duration(viper.GetInt(key.ClipboardAckSeconds)) * time.Second
	if d <= 0 {
		d = DefaultAckDuration
	}
	return &Ack{Duration: d, active: make(map[string]uint64)}
}

// Update handles CopiedMsg and AckExpiredMsg. Other messages are ignored.
func (a *Ack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clipboard.CopiedMsg:
		if a.active == nil {
			a.active = make(map[string]uint64)
		}
		a.generation++
		gen := a.generation
		a.active[msg.Target] = gen
		return tea.Tick(a.duration(), func(time.Time) tea.Msg {
			return AckExpiredMsg{Target: msg.Target, Generation: gen}
		})
	case AckExpiredMsg:
		if a.active[msg.Target] == msg.Generation {
			delete(a.active, msg.Target)
		}
	}
	return nil
}

func (a *Ack) duration() time.Duration {
	if a.Duration <= 0 {
		return DefaultAckDuration
	}
	return a.Duration
}

// Copied reports whether target shows its acknowledgment.
func (a *Ack) Copied(target string) bool {
	_, ok := a.active[target]
	return ok
}
