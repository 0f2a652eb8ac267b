package embed

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for anything that is not a movie or a series.
var ErrUnknownMode = errors.New("unknown player mode")

// Mode selects which identifiers form the embed URL.
type Mode string

const (
	Movie Mode = "movie"
	TV    Mode = "tv"
)

// Modes lists the player modes in display order.
func Modes() []Mode {
	return []Mode{Movie, TV}
}

// ParseMode resolves a user supplied mode name. "series" and "show" are accepted for TV.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return Movie, nil
	case "tv", "series", "show":
		return TV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == TV {
		return Movie
	}
	return TV
}

// Title is the human label of the mode.
func (m Mode) Title() string {
	if m == TV {
		return "TV Show"
	}
	return "Movie"
}

func (m Mode) String() string {
	return string(m)
}
