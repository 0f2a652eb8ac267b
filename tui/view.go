package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/style"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	urlStyle     = lipgloss.NewStyle().Foreground(style.Text).Background(style.Surface).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case playerState:
		return b.viewPlayer()
	case docsState:
		return b.viewDocs()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewModes() string {
	return strings.Join(lo.Map(embed.Modes(), func(m embed.Mode, _ int) string {
		label := "Movie Player"
		if m == embed.TV {
			label = "Series Player"
		}
		if m == b.selection.Mode {
			return style.Title(label)
		}
		return style.Faint(label)
	}), " ")
}

func (b *statefulBubble) viewPlayer() string {
	lines := []string{
		style.Title("VidRock") + "  " + b.viewModes(),
		"",
	}

	for _, f := range b.visibleFields() {
		lines = append(lines, b.inputsC[f].View())
	}

	if s, ok := b.suggestion.Get(); ok {
		lines = append(lines, style.Faint(icon.Get(icon.Search)+" "+s+"  (ctrl+f)"))
	} else {
		lines = append(lines, "")
	}

	urlLine := icon.Get(icon.Link) + " " + urlStyle.Render(wrap.String(b.url, lo.Max([]int{b.width - 16, 20})))
	if b.ack.Copied(urlTarget) {
		urlLine += " " + style.Fg(style.SuccessColor)(icon.Get(icon.Success)+" Copied!")
	}

	lines = append(lines,
		"",
		urlLine,
		"",
		style.Faint("ctrl+o opens the player preview in your browser"),
		"",
		b.viewFeatures(),
	)

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewFeatures() string {
	return strings.Join(lo.Map(docs.Features(), func(f docs.Feature, _ int) string {
		return style.Fg(color.Purple)(f.Title)
	}), style.Faint(" • "))
}

func (b *statefulBubble) viewDocs() string {
	return b.renderLines(true, []string{
		style.Title("API Documentation"),
		"",
		b.viewportC.View(),
	})
}

func (b *statefulBubble) viewNotice() string {
	text, isErr := b.notice.Text()
	if text == "" {
		return ""
	}
	if isErr {
		return style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + text)
	}
	return style.Faint(text)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	if notice := b.viewNotice(); notice != "" {
		lines = append(lines, "", notice)
	}

	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
