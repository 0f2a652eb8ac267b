package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/clipboard"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/internal/ui"
	"github.com/vidrock-cli/vidrock/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.RecentSuggest, false)
	viper.Set(key.EmbedBase, embed.DefaultBase)
	viper.Set(key.DocsBase, docs.DefaultBase)
	viper.Set(key.ClipboardAckSeconds, 2)
}

type copyCall struct{ target, text string }

func fakeSideEffects() (copies *[]copyCall, opened *[]string, restore func()) {
	var c []copyCall
	var o []string
	oldCopy, oldOpen := copyText, startOpen
	copyText = func(target, text string) tea.Cmd {
		c = append(c, copyCall{target, text})
		return func() tea.Msg { return clipboard.CopiedMsg{Target: target} }
	}
	startOpen = func(u string) error {
		o = append(o, u)
		return nil
	}
	return &c, &o, func() { copyText, startOpen = oldCopy, oldOpen }
}

func press(b *statefulBubble, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = b.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds copy and notice messages back. Commands returned by Update are dropped.
func drain(b *statefulBubble, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(b, c)
		}
	case clipboard.CopiedMsg, ui.NoticeMsg:
		b.Update(msg)
	}
}

func defaults() *Options {
	return &Options{Selection: embed.Selection{
		Mode: embed.Movie, MovieID: "533535", TVID: "94997", Season: "1", Episode: "1",
	}}
}

func TestPlayer(t *testing.T) {
	Convey("Given the player with the default selection", t, func() {
		copies, opened, restore := fakeSideEffects()
		defer restore()

		b := newBubble(defaults())
		So(b.state, ShouldEqual, playerState)
		So(b.url, ShouldEqual, "https://vidrock.net/movie/533535")

		Convey("Typing recomputes the URL after every keystroke", func() {
			press(b, runes("1"))
			So(b.url, ShouldEqual, "https://vidrock.net/movie/5335351")
			press(b, tea.KeyMsg{Type: tea.KeyBackspace})
			So(b.url, ShouldEqual, "https://vidrock.net/movie/533535")
		})

		Convey("Switching mode keeps both selections", func() {
			press(b, tea.KeyMsg{Type: tea.KeyCtrlT})
			So(b.selection.Mode, ShouldEqual, embed.TV)
			So(b.url, ShouldEqual, "https://vidrock.net/tv/94997/1/1")
			So(b.selection.MovieID, ShouldEqual, "533535")

			Convey("Tab moves to the season input", func() {
				press(b, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("3"))
				So(b.url, ShouldEqual, "https://vidrock.net/tv/94997/3/1")

				press(b, tea.KeyMsg{Type: tea.KeyCtrlT})
				So(b.url, ShouldEqual, "https://vidrock.net/movie/533535")
				So(b.selection.Season, ShouldEqual, "3")
			})

			Convey("Shift+tab wraps to the episode input", func() {
				press(b, tea.KeyMsg{Type: tea.KeyShiftTab})
				So(b.focused(), ShouldEqual, episodeField)
			})
		})

		Convey("Copy writes the URL once and acknowledges it", func() {
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyCtrlY}))
			So(*copies, ShouldResemble, []copyCall{{urlTarget, "https://vidrock.net/movie/533535"}})
			So(b.ack.Copied(urlTarget), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "Copied!")
		})

		Convey("Open hands the URL to the browser", func() {
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyCtrlO}))
			So(*opened, ShouldResemble, []string{"https://vidrock.net/movie/533535"})
			text, isErr := b.notice.Text()
			So(text, ShouldContainSubstring, "Opened")
			So(isErr, ShouldBeFalse)
		})

		Convey("A failing browser shows an error notice", func() {
			startOpen = func(string) error { return errors.New("no display") }
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyCtrlO}))
			text, isErr := b.notice.Text()
			So(isErr, ShouldBeTrue)
			So(text, ShouldContainSubstring, "no display")
		})

		Convey("Ctrl+d opens the docs and esc comes back", func() {
			press(b, tea.KeyMsg{Type: tea.KeyCtrlD})
			So(b.state, ShouldEqual, docsState)
			press(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, playerState)
		})

		Convey("The view shows the mode toggle and the URL", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "Movie Player")
			So(view, ShouldContainSubstring, "Series Player")
			So(view, ShouldContainSubstring, "vidrock.net/movie/533535")
		})
	})
}

func TestDocs(t *testing.T) {
	Convey("Given the docs opened on the customization tab", t, func() {
		copies, opened, restore := fakeSideEffects()
		defer restore()

		options := defaults()
		options.Docs = true
		options.Tab = docs.Customization
		b := newBubble(options)
		b.setState(docsState)

		Convey("Arrows switch tabs and wrap", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRight})
			So(b.tab, ShouldEqual, docs.WatchProgress)
			press(b, tea.KeyMsg{Type: tea.KeyRight})
			So(b.tab, ShouldEqual, docs.Embedding)
			press(b, tea.KeyMsg{Type: tea.KeyLeft})
			So(b.tab, ShouldEqual, docs.WatchProgress)
			press(b, runes("1"))
			So(b.tab, ShouldEqual, docs.Embedding)
		})

		Convey("The cursor copies the highlighted snippet", func() {
			press(b, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyEnter}))

			multiple := docs.MultipleParameters(embed.DefaultBase)
			So(*copies, ShouldResemble, []copyCall{{"example-multiple", multiple}})
			So(b.ack.Copied("example-multiple"), ShouldBeTrue)
			So(b.ack.Copied(urlTarget), ShouldBeFalse)
		})

		Convey("The cursor stops at the last snippet", func() {
			for range 20 {
				press(b, tea.KeyMsg{Type: tea.KeyDown})
			}
			So(b.cursor, ShouldEqual, len(b.snippets())-1)
		})

		Convey("Try it toggles and opens the preview", func() {
			press(b, runes("t"))
			So(b.tryIt, ShouldBeTrue)

			drain(b, press(b, runes("o")))
			So(*opened, ShouldResemble, []string{docs.MultipleParameters(embed.DefaultBase)})

			press(b, runes("t"))
			So(b.tryIt, ShouldBeFalse)
		})

		Convey("Try it does nothing where there is no preview", func() {
			press(b, runes("3"), runes("t"))
			So(b.tryIt, ShouldBeFalse)
		})

		Convey("Esc without history quits", func() {
			cmd := press(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})

		Convey("Snippets of every tab have a copy target", func() {
			for _, tab := range docs.Tabs() {
				b.selectTab(tab)
				So(lo.EveryBy(b.snippets(), func(s docs.Snippet) bool { return s.ID != "" }), ShouldBeTrue)
			}
		})
	})
}
