// Package docs holds the static API documentation and renders it for the terminal.
package docs

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/key"
)

// DefaultBase is the documented endpoint host when docs.base is empty.
const DefaultBase = "https://vidsrc.vip"

// Base returns the configured documentation endpoint host.
func Base() string {
	if base := viper.GetString(key.DocsBase); base != "" {
		return strings.TrimRight(base, "/")
	}
	return DefaultBase
}

// DefaultTab returns docs.default_tab, or Embedding when it does not parse.
func DefaultTab() Tab {
	tab, err := ParseTab(viper.GetString(key.DocsDefaultTab))
	if err != nil {
		return Embedding
	}
	return tab
}

// Snippet is a literal string the reader can copy.
type Snippet struct {
	// ID is stable across renders and names the copy target.
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
	// TryIt is a URL that can be previewed, if any.
	TryIt string `json:"try_it,omitempty"`
}

// Section is a titled group of snippets.
type Section struct {
	Title    string    `json:"title"`
	Body     string    `json:"body,omitempty"`
	Snippets []Snippet `json:"snippets,omitempty"`
	// Parameters marks the section that lists the embed parameter registry.
	Parameters bool `json:"parameters,omitempty"`
}

// Page is the content of a tab.
type Page struct {
	Tab      Tab       `json:"-"`
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
}

// Snippets flattens the page snippets in display order.
func (p Page) Snippets() []Snippet {
	return lo.FlatMap(p.Sections, func(s Section, _ int) []Snippet {
		return s.Snippets
	})
}

// Feature is a card of the features grid.
type Feature struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Features lists the features grid in display order.
func Features() []Feature {
	return []Feature{
		{"🚀", "Easy to use", "Intuitive and easy to use. Just copy the link and embed it into your website"},
		{"📚", "Huge Library", "With movies and shows scraped from multiple websites, we have it all!"},
		{"🎨", "Customizable", "You can customize the player to your needs using only query parameters"},
		{"🔄", "Auto Update", "Content added every day, updated automatically"},
		{"🎬", "Highest Quality", "Latest available quality and the fastest"},
	}
}

// Iframe wraps src in the documented iframe markup.
func Iframe(src string) string {
	return fmt.Sprintf(`<iframe src="%s" allowfullscreen></iframe>`, src)
}

// MultipleParameters is the combined parameter example, built against embedBase.
func MultipleParameters(embedBase string) string {
	var opts embed.Options
	lo.Must0(opts.Set("autoplay", "true"))
	lo.Must0(opts.Set("autonext", "true"))
	lo.Must0(opts.Set("theme", "00ff00"))
	lo.Must0(opts.Set("download", "false"))

	sel := embed.Selection{Mode: embed.TV, TVID: "1399", Season: "1", Episode: "1"}
	return embed.Build(embedBase, sel, opts)
}

// PageFor builds the content of tab. docsBase hosts the documented endpoints,
// embedBase hosts the live examples.
func PageFor(tab Tab, docsBase, embedBase string) Page {
	docsBase = strings.TrimRight(docsBase, "/")

	switch tab {
	case Customization:
		multiple := MultipleParameters(embedBase)
		return Page{
			Tab:   tab,
			Intro: "Customize the player behavior by adding these parameters to your URLs",
			Sections: []Section{
				{Title: "Available URL Parameters", Parameters: true},
				{
					Title: "Parameter Examples",
					Snippets: []Snippet{
						{ID: "example-autoplay", Label: "Enable autoplay", Text: "?autoplay=true"},
						{ID: "example-theme", Label: "Custom red theme", Text: "?theme=ff6b6b"},
						{ID: "example-download", Label: "Hide download button", Text: "?download=false"},
						{ID: "example-multiple", Label: "Multiple parameters", Text: multiple, TryIt: multiple},
						{ID: "example-autonext", Label: "Enable autonext parameter", Text: "?autonext=true"},
					},
				},
			},
		}
	case WatchProgress:
		return Page{
			Tab:   tab,
			Intro: "Track and manage watch progress for users.",
			Sections: []Section{
				{
					Title: "Watch Progress API",
					Body:  "Currently, watch progress tracking is not supported via API. Please check back for updates.",
				},
			},
		}
	default:
		return Page{
			Tab:   Embedding,
			Intro: "Comprehensive API reference for embedding movies and series using TMDB or IMDB IDs.",
			Sections: []Section{
				{
					Title: "Movie Embed URL",
					Snippets: []Snippet{
						{ID: "movie-tmdb", Text: docsBase + "/embed/movie/{tmdb_id}"},
						{ID: "movie-imdb", Text: docsBase + "/embed/movie/{imdb_id}"},
						{ID: "movie-iframe", Label: "Example iframe", Text: Iframe(docsBase + "/embed/movie/tt1234567")},
					},
				},
				{
					Title: "TV Shows Embed URL",
					Snippets: []Snippet{
						{ID: "tv-tmdb", Text: docsBase + "/embed/tv/{tmdb_id}/{season_number}/{episode_number}"},
						{ID: "tv-imdb", Text: docsBase + "/embed/tv/{imdb_id}/{season_number}/{episode_number}"},
						{ID: "tv-iframe", Label: "Example iframe", Text: Iframe(docsBase + "/embed/tv/tt9876543/1/1")},
					},
				},
				{
					Title: "List All Movies & Series",
					Snippets: []Snippet{
						{ID: "list-movie", Text: docsBase + "/list/movie.json"},
						{ID: "list-tv", Text: docsBase + "/list/tv.json"},
					},
				},
			},
		}
	}
}

// Current builds the page of tab against the configured hosts.
func Current(tab Tab) Page {
	return PageFor(tab, Base(), embed.Base())
}
