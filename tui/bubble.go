package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/internal/ui"
	"github.com/vidrock-cli/vidrock/util"
)

// urlTarget is the copy target of the derived URL.
const urlTarget = "url"

// statefulBubble holds the visitor's selection, the derived URL and the documentation cursor.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	inputsC   [4]textinput.Model
	helpC     help.Model
	viewportC viewport.Model

	selection embed.Selection
	params    embed.Options
	base      string
	url       string
	focus     int

	tab    docs.Tab
	cursor int
	tryIt  bool

	suggestion mo.Option[string]
	ack        *ui.Ack
	notice     *ui.Notice

	width, height int
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
	if s == docsState {
		b.refreshDocs()
	}
}

// newState switches to s and remembers where to go back to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the previous state. It reports false when there is none.
func (b *statefulBubble) previousState() bool {
	previous, ok := b.statesHistory.Pop()
	if ok {
		b.setState(previous)
	}
	return ok
}

// visibleFields lists the inputs of the active mode.
func (b *statefulBubble) visibleFields() []field {
	if b.selection.Mode == embed.TV {
		return []field{tvField, seasonField, episodeField}
	}
	return []field{movieField}
}

func (b *statefulBubble) focused() field {
	fields := b.visibleFields()
	return fields[util.Clamp(b.focus, 0, len(fields)-1)]
}

// setFocus moves the cursor to the visible input at index i, wrapping around.
func (b *statefulBubble) setFocus(i int) {
	fields := b.visibleFields()
	b.focus = util.Wrap(i, 0, len(fields))
	for f := range b.inputsC {
		b.inputsC[f].Blur()
	}
	b.inputsC[b.focused()].Focus()
	b.inputsC[b.focused()].CursorEnd()
}

// sync copies the inputs into the selection and derives the URL.
func (b *statefulBubble) sync() {
	b.selection.MovieID = b.inputsC[movieField].Value()
	b.selection.TVID = b.inputsC[tvField].Value()
	b.selection.Season = b.inputsC[seasonField].Value()
	b.selection.Episode = b.inputsC[episodeField].Value()
	b.url = embed.Build(b.base, b.selection, b.params)
}

// page is the documentation of the active tab.
func (b *statefulBubble) page() docs.Page {
	return docs.Current(b.tab)
}

// snippets of the active tab.
func (b *statefulBubble) snippets() []docs.Snippet {
	return b.page().Snippets()
}

// refreshDocs redraws the documentation into the viewport, keeping the cursor visible.
func (b *statefulBubble) refreshDocs() {
	renderer := docs.Renderer{
		Width:  b.viewportC.Width,
		Cursor: b.cursor,
		Copied: b.ack.Copied,
		TryIt:  b.tryIt,
	}

	content, line := renderer.RenderWithCursor(b.page())
	b.viewportC.SetContent(content)

	if line < 0 {
		return
	}
	if line < b.viewportC.YOffset {
		b.viewportC.SetYOffset(line)
	} else if bottom := b.viewportC.YOffset + b.viewportC.Height; line >= bottom {
		b.viewportC.SetYOffset(line - b.viewportC.Height + 1)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	for f := range b.inputsC {
		b.inputsC[f].Width = b.width / 2
	}

	b.viewportC.Width = b.width
	b.viewportC.Height = lo.Max([]int{b.height - 4, 3})
	b.refreshDocs()
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		selection:     options.Selection,
		params:        options.Params,
		base:          embed.Base(),
		tab:           options.Tab,
		ack:           ui.NewAck(),
		notice:        &ui.Notice{},
	}

	if bubble.selection.Mode == "" {
		bubble.selection.Mode = embed.Movie
	}

	makeInput := func(placeholder, prompt, value string, limit int) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		input.Prompt = prompt
		input.CharLimit = limit
		input.SetValue(value)
		return input
	}

	bubble.inputsC[movieField] = makeInput("TMDB or IMDB ID", "Movie ID  ", bubble.selection.MovieID, 20)
	bubble.inputsC[tvField] = makeInput("TMDB or IMDB ID", "Series ID ", bubble.selection.TVID, 20)
	bubble.inputsC[seasonField] = makeInput("Season", "Season    ", bubble.selection.Season, 4)
	bubble.inputsC[episodeField] = makeInput("Episode", "Episode   ", bubble.selection.Episode, 4)

	bubble.helpC = help.New()
	bubble.viewportC = viewport.New(80, 20)

	bubble.setFocus(0)
	bubble.sync()
	bubble.setState(playerState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return &bubble
}
