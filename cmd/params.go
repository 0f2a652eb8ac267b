package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/style"
)

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")

	paramsCmd.SetOut(os.Stdout)
}

// paramsCmd lists the player parameters accepted by url.
var paramsCmd = &cobra.Command{
	Use:     "params",
	Short:   "List the documented player parameters",
	Aliases: []string{"parameters"},
	Run: func(cmd *cobra.Command, args []string) {
		params := embed.Parameters()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(params))
			return
		}

		width := lo.Max(lo.Map(params, func(p embed.Parameter, _ int) int {
			return len(p.Name)
		}))

		for _, p := range params {
			cmd.Printf(
				"%s  %s %s\n%s\n",
				style.Fg(color.Purple)(p.Name+strings.Repeat(" ", width-len(p.Name))),
				style.Fg(color.Yellow)(p.Kind.Label()),
				style.Faint("default "+p.DefaultLabel()),
				style.Faint(strings.Repeat(" ", width+2)+p.Description),
			)
		}
	},
}
