package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/where"
)

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		lo.Must0(f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func execute(args ...string) string {
	var out bytes.Buffer
	resetFlags(urlCmd)
	urlCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return out.String()
}

func TestSelectionFromFlags(t *testing.T) {
	Convey("Given a command with selection flags", t, func() {
		viper.Set(key.PlayerDefaultMode, "movie")
		viper.Set(key.PlayerMovieID, "533535")
		viper.Set(key.PlayerTVID, "94997")
		viper.Set(key.PlayerSeason, "1")
		viper.Set(key.PlayerEpisode, "1")

		c := &cobra.Command{}
		selectionFlags(c)

		Convey("Without flags the configured selection is used", func() {
			sel, err := selectionFromFlags(c)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, embed.FromConfig())
		})

		Convey("Changed flags override the configuration", func() {
			lo.Must0(c.Flags().Parse([]string{"--mode", "series", "--tv", "1396", "-e", "4"}))
			sel, err := selectionFromFlags(c)
			So(err, ShouldBeNil)
			So(sel.Mode, ShouldEqual, embed.TV)
			So(sel.TVID, ShouldEqual, "1396")
			So(sel.Season, ShouldEqual, "1")
			So(sel.Episode, ShouldEqual, "4")
			So(sel.MovieID, ShouldEqual, "533535")
		})

		Convey("An unknown mode is an error", func() {
			lo.Must0(c.Flags().Parse([]string{"--mode", "anime"}))
			_, err := selectionFromFlags(c)
			So(errors.Is(err, embed.ErrUnknownMode), ShouldBeTrue)
		})
	})
}

func TestApplyArgs(t *testing.T) {
	Convey("Given a movie selection", t, func() {
		sel := embed.Selection{Mode: embed.Movie, MovieID: "533535", TVID: "94997", Season: "1", Episode: "1"}

		Convey("A single argument replaces the active id", func() {
			So(applyArgs(sel, []string{"tt5433140"}).MovieID, ShouldEqual, "tt5433140")
		})

		Convey("Season and episode arguments switch to tv", func() {
			got := applyArgs(sel, []string{"1396", "2", "3"})
			So(got.Mode, ShouldEqual, embed.TV)
			So(got.TVID, ShouldEqual, "1396")
			So(got.Season, ShouldEqual, "2")
			So(got.Episode, ShouldEqual, "3")
			So(got.MovieID, ShouldEqual, "533535")
		})

		Convey("No arguments change nothing", func() {
			So(applyArgs(sel, nil), ShouldResemble, sel)
		})
	})
}

func TestConfigHelpers(t *testing.T) {
	Convey("Given the configuration registry", t, func() {
		Convey("Values are parsed to the default's type", func() {
			So(lo.Must(parseValue(key.ClipboardAckSeconds, []string{"3"})), ShouldEqual, 3)
			So(lo.Must(parseValue(key.RecentSuggest, []string{"false"})), ShouldEqual, false)
			So(lo.Must(parseValue(key.EmbedBase, []string{"https://example.org"})), ShouldEqual, "https://example.org")

			_, err := parseValue(key.ServerH2C, []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown keys suggest the closest one", func() {
			err := errUnknownKey("embed.bse")
			So(err.Error(), ShouldContainSubstring, key.EmbedBase)
		})

		Convey("Every key has an environment variable", func() {
			names := envNames()
			So(names, ShouldContain, "VIDROCK_EMBED_BASE")
			So(names, ShouldContain, where.EnvConfigPath)
		})
	})
}

func TestURLCommand(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/config/vidrock")
		viper.Set(key.EmbedBase, "https://vidrock.net")
		viper.Set(key.RecentSuggest, true)

		Convey("An episode URL carries only the changed parameters", func() {
			out := execute("url", "1396", "1", "1", "--theme", "#16A085", "--autoplay")
			So(out, ShouldEqual, "https://vidrock.net/tv/1396/1/1?autoplay=true&theme=16a085\n")
		})

		Convey("JSON output describes the link", func() {
			var link embed.Link
			lo.Must0(json.Unmarshal([]byte(execute("url", "tt5433140", "--json")), &link))
			So(link.URL, ShouldEqual, "https://vidrock.net/movie/tt5433140")
			So(link.Selection.MovieID, ShouldEqual, "tt5433140")
			So(link.Query, ShouldBeEmpty)
		})

		Convey("The schema describes the JSON output", func() {
			out := execute("url", "--schema")
			So(out, ShouldContainSubstring, `"url"`)
			So(out, ShouldContainSubstring, `"selection"`)
		})
	})
}
