package embed

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrUnknownParameter is returned for names outside the documented registry.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrInvalidValue is returned when a value does not match the parameter kind.
	ErrInvalidValue = errors.New("invalid value")
)

// Kind describes the accepted value syntax of a parameter.
type Kind string

const (
	Boolean  Kind = "boolean"
	HexColor Kind = "hex"
	Language Kind = "language"
)

// Label is the kind as shown in the documentation.
func (k Kind) Label() string {
	switch k {
	case HexColor:
		return "hex color"
	case Language:
		return "language code"
	default:
		return string(k)
	}
}

// DefaultLabel is the default value as shown in the documentation.
func (p Parameter) DefaultLabel() string {
	if p.Default == "" {
		return "none"
	}
	return p.Default
}

var (
	hexPattern  = regexp.MustCompile(`^(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	langPattern = regexp.MustCompile(`^[a-z]{2}$`)
)

// Normalize checks value against the kind and returns its canonical form.
func (k Kind) Normalize(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch k {
	case Boolean:
		if v == "true" || v == "false" {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q is not true or false", ErrInvalidValue, value)
	case HexColor:
		v = strings.TrimPrefix(v, "#")
		if hexPattern.MatchString(v) {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q is not a 3 or 6 digit hex color", ErrInvalidValue, value)
	case Language:
		if langPattern.MatchString(v) {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q is not a two letter language code", ErrInvalidValue, value)
	default:
		return "", fmt.Errorf("%w: unsupported kind %q", ErrInvalidValue, k)
	}
}

// Parameter is a documented query parameter of the playback service.
// Its effect is implemented entirely by the service.
type Parameter struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

var registry = []Parameter{
	{Name: "autoplay", Kind: Boolean, Default: "false", Description: "Automatically start playing the video when loaded"},
	{Name: "autonext", Kind: Boolean, Default: "false", Description: "Plays next TV episode automatically"},
	{Name: "theme", Kind: HexColor, Default: "ffffff", Description: "Custom accent color (without #). Changes player theme colors"},
	{Name: "download", Kind: Boolean, Default: "true", Description: "Show/hide the download button in player controls"},
	{Name: "nextbutton", Kind: Boolean, Default: "true", Description: "Show/hide next episode notification for TV shows"},
	{Name: "episodeselector", Kind: Boolean, Default: "true", Description: "Show/hide the season/episode selector button"},
	{Name: "lang", Kind: Language, Description: "Auto-select subtitles by language (e.g., 'en', 'es', 'fr'). Uses 2-letter ISO codes"},
}

// Parameters returns the registry in documented order.
func Parameters() []Parameter {
	return append([]Parameter(nil), registry...)
}

// Lookup finds a parameter by name.
func Lookup(name string) (Parameter, bool) {
	return lo.Find(registry, func(p Parameter) bool {
		return p.Name == name
	})
}
