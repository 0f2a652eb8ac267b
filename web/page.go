package web

import (
	"net/url"

	"github.com/vidrock-cli/vidrock/docs"
	vembed "github.com/vidrock-cli/vidrock/embed"
)

// Query parameter names of the landing page.
const (
	paramMode    = "mode"
	paramMovie   = "movie"
	paramTV      = "tv"
	paramSeason  = "season"
	paramEpisode = "episode"
	paramTab     = "tab"
	paramTry     = "try"
)

// state is everything the page keeps in its query string.
type state struct {
	Selection vembed.Selection
	// Options are the player parameters appended to the preview URL.
	Options vembed.Options
	Tab     docs.Tab
	TryIt   bool
}

func readOptions(q url.Values) (vembed.Options, error) {
	return vembed.ParseOptions(func(name string) (string, bool) {
		return q.Get(name), q.Has(name)
	})
}

// readSelection overlays the query parameters on defaults. A present but empty value is kept.
func readSelection(q url.Values, defaults vembed.Selection) (vembed.Selection, error) {
	sel := defaults

	if q.Has(paramMode) {
		mode, err := vembed.ParseMode(q.Get(paramMode))
		if err != nil {
			return sel, err
		}
		sel.Mode = mode
	}

	for name, dst := range map[string]*string{
		paramMovie:   &sel.MovieID,
		paramTV:      &sel.TVID,
		paramSeason:  &sel.Season,
		paramEpisode: &sel.Episode,
	} {
		if q.Has(name) {
			*dst = q.Get(name)
		}
	}

	return sel, nil
}

// readState never fails: anything invalid falls back to its default.
func readState(q url.Values, defaults vembed.Selection) state {
	sel, err := readSelection(q, defaults)
	if err != nil {
		q = cloneWithout(q, paramMode)
		sel, _ = readSelection(q, defaults)
	}

	opts, err := readOptions(q)
	if err != nil {
		opts = vembed.Options{}
	}

	tab := docs.DefaultTab()
	if q.Has(paramTab) {
		if t, err := docs.ParseTab(q.Get(paramTab)); err == nil {
			tab = t
		}
	}

	return state{
		Selection: sel,
		Options:   opts,
		Tab:       tab,
		TryIt:     q.Get(paramTry) == "1" || q.Get(paramTry) == "true",
	}
}

func cloneWithout(q url.Values, names ...string) url.Values {
	c := make(url.Values, len(q))
	for k, v := range q {
		c[k] = v
	}
	for _, name := range names {
		c.Del(name)
	}
	return c
}

// values encodes the state back into query parameters.
func (s state) values() url.Values {
	v := url.Values{}
	v.Set(paramMode, s.Selection.Mode.String())
	v.Set(paramMovie, s.Selection.MovieID)
	v.Set(paramTV, s.Selection.TVID)
	v.Set(paramSeason, s.Selection.Season)
	v.Set(paramEpisode, s.Selection.Episode)
	for _, p := range vembed.Parameters() {
		if value, ok := s.Options.Get(p.Name); ok {
			v.Set(p.Name, value)
		}
	}
	v.Set(paramTab, s.Tab.String())
	if s.TryIt {
		v.Set(paramTry, "1")
	}
	return v
}

// hidden is a form field carrying state the visible inputs do not cover.
type hidden struct {
	Name, Value string
}

type modeLink struct {
	Label  string
	Href   string
	Active bool
}

type tabLink struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// pageData is the model of templates/index.html.tmpl.
type pageData struct {
	Selection vembed.Selection
	Tab       docs.Tab
	TryIt     bool

	URL        string
	Modes      []modeLink
	Hidden     []hidden
	Tabs       []tabLink
	Doc        docs.Page
	Parameters []vembed.Parameter
	Features   []docs.Feature
	TryItHref  string
	AckMillis  int
}

func (s *Server) pageData(st state) pageData {
	link := func(fragment string, mutate func(*state)) string {
		next := st
		mutate(&next)
		return "/?" + next.values().Encode() + "#" + fragment
	}

	data := pageData{
		Selection:  st.Selection,
		Tab:        st.Tab,
		TryIt:      st.TryIt,
		URL:        vembed.Build(s.embedBase, st.Selection, st.Options),
		Doc:        docs.PageFor(st.Tab, s.docsBase, s.embedBase),
		Parameters: vembed.Parameters(),
		Features:   docs.Features(),
		AckMillis:  s.ackMillis,
	}

	for _, m := range vembed.Modes() {
		label := "Movie Player"
		if m == vembed.TV {
			label = "Series Player"
		}
		data.Modes = append(data.Modes, modeLink{
			Label:  label,
			Href:   link("player", func(n *state) { n.Selection = n.Selection.WithMode(m) }),
			Active: m == st.Selection.Mode,
		})
	}

	for _, t := range docs.Tabs() {
		data.Tabs = append(data.Tabs, tabLink{
			ID:     t.String(),
			Label:  t.Title(),
			Href:   link("docs", func(n *state) { n.Tab = t; n.TryIt = false }),
			Active: t == st.Tab,
		})
	}

	data.TryItHref = link("try-it", func(n *state) { n.TryIt = !n.TryIt })

	// The visible inputs of one mode submit alongside the other mode's values.
	all := st.values()
	visible := map[string]bool{paramMovie: true}
	if st.Selection.Mode == vembed.TV {
		visible = map[string]bool{paramTV: true, paramSeason: true, paramEpisode: true}
	}
	names := []string{paramMode, paramMovie, paramTV, paramSeason, paramEpisode}
	for _, p := range vembed.Parameters() {
		names = append(names, p.Name)
	}
	names = append(names, paramTab, paramTry)
	for _, name := range names {
		if !visible[name] && all.Has(name) {
			data.Hidden = append(data.Hidden, hidden{Name: name, Value: all.Get(name)})
		}
	}

	return data
}
