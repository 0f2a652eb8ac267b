package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/where"
)

// location is a path printed by where, selectable with its own flag.
type location struct {
	title string
	flag  string
	short mo.Option[string]
	path  func() string
	// listed locations are printed when no flag is given.
	listed bool
}

var locations = []location{
	{title: "Config", flag: "config", short: mo.Some("c"), path: where.Config, listed: true},
	{title: "Logs", flag: "logs", short: mo.Some("l"), path: where.Logs, listed: true},
	{title: "Cache", flag: "cache", short: mo.None[string](), path: where.Cache, listed: true},
	{title: "Recent identifiers", flag: "recent", short: mo.Some("r"), path: where.Recent},
	{title: "Temp", flag: "temp", short: mo.None[string](), path: where.Temp},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		help := "Print the " + l.title + " path only"
		if short, ok := l.short.Get(); ok {
			whereCmd.Flags().BoolP(l.flag, short, false, help)
		} else {
			whereCmd.Flags().Bool(l.flag, false, help)
		}
	}
	whereCmd.Flags().BoolP("json", "j", false, "Print every path as a JSON object")

	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	}), "json")...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where vidrock keeps its files.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the paths of the config, logs and cache",
	Run: func(cmd *cobra.Command, args []string) {
		if selected, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(selected.path())
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.path()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(locations, func(l location, _ int) bool { return l.listed })
		for i, l := range listed {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.title), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
