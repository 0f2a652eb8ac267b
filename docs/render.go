package docs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/style"
)

var (
	codeStyle   = lipgloss.NewStyle().Foreground(style.Text).Background(style.Surface).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(style.AccentColor).Bold(true)
	paramBadge  = style.Tag(style.Text, style.Surface)
	kindBadge   = style.Tag(color.HiBlue, style.Base)
	defBadge    = style.Tag(style.Green, style.Base)
)

// Renderer draws a documentation page for the terminal.
type Renderer struct {
	Width int
	// Cursor is the index of the highlighted snippet, -1 for none.
	Cursor int
	// Copied reports whether a snippet shows its acknowledgment.
	Copied func(id string) bool
	// TryIt expands previewable snippets with their preview URL.
	TryIt bool
}

// Render draws tab against the configured hosts with no cursor.
func Render(tab Tab, width int) string {
	return Renderer{Width: width, Cursor: -1}.Render(Current(tab))
}

// Tabs draws the tab bar with active highlighted.
func (r Renderer) Tabs(active Tab) string {
	labels := make([]string, 0, len(tabs))
	for i, t := range Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == active {
			labels = append(labels, style.Title(label))
		} else {
			labels = append(labels, style.Faint(label))
		}
	}
	return strings.Join(labels, "  ")
}

// Render draws the page.
func (r Renderer) Render(page Page) string {
	out, _ := r.RenderWithCursor(page)
	return out
}

// RenderWithCursor draws the page and reports the line of the highlighted snippet, -1 if none.
func (r Renderer) RenderWithCursor(page Page) (string, int) {
	width := r.Width
	if width <= 0 {
		width = 80
	}

	lines := []string{
		r.Tabs(page.Tab),
		"",
		wordwrap.String(page.Intro, width),
	}

	index, cursorLine := 0, -1
	for _, section := range page.Sections {
		lines = append(lines, "", style.Bold(section.Title))

		if section.Body != "" {
			lines = append(lines, wordwrap.String(section.Body, width))
		}

		if section.Parameters {
			lines = append(lines, r.parameters(width)...)
		}

		for _, snippet := range section.Snippets {
			rows := r.snippet(snippet, index, width)
			if index == r.Cursor {
				cursorLine = len(strings.Split(strings.Join(lines, "\n"), "\n"))
				if snippet.Label != "" {
					cursorLine += 2
				}
			}
			lines = append(lines, rows...)
			index++
		}
	}

	return strings.Join(lines, "\n"), cursorLine
}

func (r Renderer) parameters(width int) []string {
	var lines []string
	for _, p := range embed.Parameters() {
		lines = append(lines,
			"",
			paramBadge(p.Name)+" "+kindBadge(p.Kind.Label())+" "+defBadge("default: "+p.DefaultLabel()),
			style.Faint(wordwrap.String(p.Description, width)),
		)
	}
	return lines
}

func (r Renderer) snippet(s Snippet, index, width int) []string {
	var lines []string
	if s.Label != "" {
		lines = append(lines, "", s.Label+":")
	}

	marker := "  "
	if index == r.Cursor {
		marker = cursorStyle.Render("▸ ")
	}

	code := wrap.String(s.Text, width-4)
	row := marker + codeStyle.Render(code)

	if r.Copied != nil && r.Copied(s.ID) {
		row += " " + style.Fg(style.SuccessColor)(icon.Get(icon.Success)+" Copied!")
	} else if index == r.Cursor {
		row += " " + style.Faint(icon.Get(icon.Copy)+" Copy")
	}
	lines = append(lines, row)

	if s.TryIt != "" {
		if r.TryIt {
			lines = append(lines, "  "+style.Fg(style.AccentColor)(icon.Get(icon.Link)+" Preview: ")+style.Underline(s.TryIt))
		} else {
			lines = append(lines, "  "+style.Faint("Try it"))
		}
	}

	return lines
}

// RenderFeatures draws the features grid as a list.
func RenderFeatures(width int) string {
	var b strings.Builder
	for i, f := range Features() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Bold(f.Emoji + " " + f.Title))
		b.WriteString("\n")
		b.WriteString(style.Faint(wordwrap.String(f.Description, width)))
		b.WriteString("\n")
	}
	return b.String()
}
