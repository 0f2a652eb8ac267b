package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidrock-cli/vidrock/clipboard"
	"github.com/vidrock-cli/vidrock/color"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/icon"
	"github.com/vidrock-cli/vidrock/log"
	"github.com/vidrock-cli/vidrock/open"
	"github.com/vidrock-cli/vidrock/recent"
	"github.com/vidrock-cli/vidrock/style"
	"github.com/vidrock-cli/vidrock/util"
)

func init() {
	rootCmd.AddCommand(urlCmd)
	selectionFlags(urlCmd)

	for _, p := range embed.Parameters() {
		urlCmd.Flags().String(p.Name, "", fmt.Sprintf("%s (%s, default %s)", p.Description, p.Kind.Label(), p.DefaultLabel()))
		if p.Kind == embed.Boolean {
			urlCmd.Flags().Lookup(p.Name).NoOptDefVal = "true"
		}
	}

	urlCmd.Flags().BoolP("copy", "c", false, "Copy the URL to the clipboard")
	urlCmd.Flags().BoolP("open", "o", false, "Open the URL in the default browser")
	urlCmd.Flags().BoolP("json", "j", false, "Print the URL and its selection as JSON")
	urlCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output")
	urlCmd.MarkFlagsMutuallyExclusive("json", "schema")

	urlCmd.SetOut(os.Stdout)
}

// urlCmd derives an embed URL from the command line.
var urlCmd = &cobra.Command{
	Use:   "url [id] [season] [episode]",
	Short: "Print the embed URL for a movie or an episode",
	Long: `Print the embed URL for a movie or an episode.
A season or an episode argument switches the mode to tv.
Without an id on a terminal, the identifiers are prompted for.`,
	Example: `  vidrock url tt5433140
  vidrock url 1396 1 1 --autoplay --theme 16A085
  vidrock url --mode tv --tv 1396 -s 2 -e 3 --copy`,
	Args: cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			schema := (&jsonschema.Reflector{}).Reflect(&embed.Link{})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(schema))
			return
		}

		sel, err := selectionFromFlags(cmd)
		handleErr(err)
		sel = applyArgs(sel, args)

		idGiven := len(args) > 0 || cmd.Flags().Changed("movie") || cmd.Flags().Changed("tv")
		if !idGiven && util.IsTerminal() {
			sel, err = promptSelection(sel)
			handleErr(err)
		}

		opts, err := embed.ParseOptions(func(name string) (string, bool) {
			if !cmd.Flags().Changed(name) {
				return "", false
			}
			return lo.Must(cmd.Flags().GetString(name)), true
		})
		handleErr(err)

		link := embed.NewLink(embed.Base(), sel, opts)

		if err := recent.RememberSelection(sel); err != nil {
			log.Warn(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(link))
		} else {
			cmd.Println(link.URL)
		}

		if lo.Must(cmd.Flags().GetBool("copy")) {
			if clipboard.Unsupported() {
				handleErr(errors.New("no clipboard utility found, install xclip, xsel or wl-clipboard"))
			}
			handleErr(clipboard.Write(link.URL))
			_, _ = fmt.Fprintf(os.Stderr, "%s Copied!\n", style.Fg(color.Green)(icon.Get(icon.Copy)))
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(link.URL))
		}
	},
}

// applyArgs fills the selection from positional arguments.
// More than one argument means an episode.
func applyArgs(sel embed.Selection, args []string) embed.Selection {
	if len(args) > 1 {
		sel = sel.WithMode(embed.TV)
	}

	switch len(args) {
	case 3:
		sel.Episode = args[2]
		fallthrough
	case 2:
		sel.Season = args[1]
		fallthrough
	case 1:
		if sel.Mode == embed.TV {
			sel.TVID = args[0]
		} else {
			sel.MovieID = args[0]
		}
	}

	return sel
}

// promptSelection asks for the identifiers of the active mode, offering the current ones as defaults.
func promptSelection(sel embed.Selection) (embed.Selection, error) {
	var id string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s id (TMDB or IMDB)", sel.Mode.Title()),
		Default: sel.ID(),
		Suggest: func(toComplete string) []string {
			return recent.SuggestMany(sel.Mode, toComplete)
		},
	}
	if err := survey.AskOne(prompt, &id, survey.WithValidator(survey.Required)); err != nil {
		return sel, err
	}

	if sel.Mode == embed.Movie {
		sel.MovieID = id
		return sel, nil
	}

	sel.TVID = id
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"Season", &sel.Season},
		{"Episode", &sel.Episode},
	} {
		prompt := &survey.Input{Message: field.name, Default: lo.Ternary(*field.value != "", *field.value, "1")}
		if err := survey.AskOne(prompt, field.value); err != nil {
			return sel, err
		}
	}

	return sel, nil
}
