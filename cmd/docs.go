package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidrock-cli/vidrock/docs"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/util"
)

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().BoolP("features", "f", false, "Print the feature list instead of a tab")
	docsCmd.Flags().IntP("width", "w", 0, "Wrap width, defaults to the terminal width")

	docsCmd.SetOut(os.Stdout)
}

// docsCmd prints a documentation tab without starting the TUI.
var docsCmd = &cobra.Command{
	Use:               "docs [tab]",
	Short:             "Print the API documentation",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionTabs,
	Run: func(cmd *cobra.Command, args []string) {
		width := lo.Must(cmd.Flags().GetInt("width"))
		if width <= 0 {
			width = 80
			if w, _, err := util.TerminalSize(); err == nil && w > 0 {
				width = w
			}
		}

		if lo.Must(cmd.Flags().GetBool("features")) {
			cmd.Print(docs.RenderFeatures(width))
			return
		}

		tab := docs.DefaultTab()
		if len(args) == 1 {
			var err error
			tab, err = docs.ParseTab(args[0])
			handleErr(err)
		}

		cmd.Println(style.Title(tab.Title()))
		cmd.Println()
		cmd.Println(docs.Render(tab, width))
	},
}
