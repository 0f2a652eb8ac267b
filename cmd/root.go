// Package cmd implements the command-line interface for vidrock.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/constant"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/log"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/tui"
	"github.com/vidrock-cli/vidrock/util"
	"github.com/vidrock-cli/vidrock/version"
	"github.com/vidrock-cli/vidrock/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	selectionFlags(rootCmd)

	rootCmd.Flags().StringP("tab", "t", "", "Documentation tab to open (embedding, customization, watch-progress)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("tab", completionTabs))
	rootCmd.Flags().BoolP("docs", "d", false, "Start on the documentation instead of the player")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// selectionFlags registers the flags that seed a player selection.
func selectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "Player mode (movie or tv)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(embed.Modes(), func(m embed.Mode, _ int) string {
			return m.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().String("movie", "", "TMDB or IMDB id of the movie")
	cmd.Flags().String("tv", "", "TMDB or IMDB id of the series")
	cmd.Flags().StringP("season", "s", "", "Season number")
	cmd.Flags().StringP("episode", "e", "", "Episode number")
}

// selectionFromFlags starts from the configured selection and applies every changed flag.
func selectionFromFlags(cmd *cobra.Command) (embed.Selection, error) {
	sel := embed.FromConfig()

	if cmd.Flags().Changed("mode") {
		mode, err := embed.ParseMode(lo.Must(cmd.Flags().GetString("mode")))
		if err != nil {
			return sel, err
		}
		sel = sel.WithMode(mode)
	}

	for name, field := range map[string]*string{
		"movie":   &sel.MovieID,
		"tv":      &sel.TVID,
		"season":  &sel.Season,
		"episode": &sel.Episode,
	} {
		if cmd.Flags().Changed(name) {
			*field = lo.Must(cmd.Flags().GetString(name))
		}
	}

	return sel, nil
}

func completionTabs(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(docs.Tabs(), func(t docs.Tab, _ int) string {
		return t.String()
	}), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd defines the entry point for the vidrock application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Build and preview embed links for the VidRock player",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Build and preview embed links for the VidRock player"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		sel, err := selectionFromFlags(cmd)
		handleErr(err)

		tab := docs.DefaultTab()
		if cmd.Flags().Changed("tab") {
			tab, err = docs.ParseTab(lo.Must(cmd.Flags().GetString("tab")))
			handleErr(err)
		}

		options := tui.Options{
			Selection: sel,
			Tab:       tab,
			Docs:      lo.Must(cmd.Flags().GetBool("docs")) || cmd.Flags().Changed("tab"),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
