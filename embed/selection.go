// Package embed derives playback URLs for the external embed service.
//
// A URL is a plain string interpolation of the active identifiers:
//
//	{base}/movie/{id}
//	{base}/tv/{id}/{season}/{episode}
//
// Identifiers are never validated or escaped. A malformed identifier yields a
// malformed URL, which surfaces as a broken preview and nothing else.
package embed

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/key"
)

// DefaultBase is the playback service used when embed.base is empty.
const DefaultBase = "https://vidrock.net"

// Selection is what the visitor has entered so far.
// Only the fields of the active mode contribute to the URL; the others are kept as is.
type Selection struct {
	Mode    Mode   `json:"mode" jsonschema:"enum=movie,enum=tv"`
	MovieID string `json:"movie_id,omitempty" jsonschema:"description=TMDB or IMDB id of the movie"`
	TVID    string `json:"tv_id,omitempty" jsonschema:"description=TMDB or IMDB id of the series"`
	Season  string `json:"season,omitempty"`
	Episode string `json:"episode,omitempty"`
}

// FromConfig returns the selection configured under the player.* keys.
func FromConfig() Selection {
	mode, err := ParseMode(viper.GetString(key.PlayerDefaultMode))
	if err != nil {
		mode = Movie
	}

	return Selection{
		Mode:    mode,
		MovieID: viper.GetString(key.PlayerMovieID),
		TVID:    viper.GetString(key.PlayerTVID),
		Season:  viper.GetString(key.PlayerSeason),
		Episode: viper.GetString(key.PlayerEpisode),
	}
}

// WithMode switches the active mode without touching any identifier.
func (s Selection) WithMode(mode Mode) Selection {
	s.Mode = mode
	return s
}

// ID returns the identifier of the active mode.
func (s Selection) ID() string {
	if s.Mode == TV {
		return s.TVID
	}
	return s.MovieID
}

// Base returns the configured playback service base URL.
func Base() string {
	if base := viper.GetString(key.EmbedBase); base != "" {
		return base
	}
	return DefaultBase
}

// Derive maps a selection to its embed URL.
func Derive(base string, sel Selection) string {
	base = strings.TrimRight(base, "/")

	if sel.Mode == TV {
		return base + "/tv/" + sel.TVID + "/" + sel.Season + "/" + sel.Episode
	}
	return base + "/movie/" + sel.MovieID
}

// Build derives the URL and appends the encoded options, if any.
func Build(base string, sel Selection, opts Options) string {
	u := Derive(base, sel)
	if q := opts.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Link is a derived URL together with what it was derived from.
type Link struct {
	URL       string    `json:"url" jsonschema:"description=Embed URL of the playback service"`
	Selection Selection `json:"selection"`
	Query     string    `json:"query,omitempty" jsonschema:"description=Encoded player parameters"`
}

// NewLink builds the URL of sel with opts.
func NewLink(base string, sel Selection, opts Options) Link {
	return Link{
		URL:       Build(base, sel, opts),
		Selection: sel,
		Query:     opts.Encode(),
	}
}
