// Package recent remembers identifiers entered per player mode and suggests them back.
package recent

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/key"
	"github.com/vidrock-cli/vidrock/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Mode embed.Mode `json:"mode"`
	ID   string     `json:"id"`
	Rank int        `json:"rank"`
}

type records = map[string]*record

func store() *gache.Cache[records] {
	return gache.New[records](&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	})
}

func recordKey(mode embed.Mode, id string) string {
	return mode.String() + ":" + id
}

// Enabled reports whether suggestions are turned on.
func Enabled() bool {
	return viper.GetBool(key.RecentSuggest)
}

// Remember bumps the rank of id within mode by one.
func Remember(mode embed.Mode, id string) error {
	id = sanitize(id)
	if !Enabled() || id == "" {
		return nil
	}

	cache := store()
	cached, _, err := cache.Get()
	if err != nil || cached == nil {
		cached = make(records)
	}

	k := recordKey(mode, id)
	if r, ok := cached[k]; ok {
		r.Rank++
	} else {
		cached[k] = &record{Mode: mode, ID: id, Rank: 1}
	}

	return cache.Set(cached)
}

// RememberSelection remembers the identifiers of the active mode.
func RememberSelection(sel embed.Selection) error {
	return Remember(sel.Mode, sel.ID())
}

// Suggest returns the best ranked identifier of mode fuzzy matching partial.
// An identifier equal to partial, ignoring case, is not a suggestion.
func Suggest(mode embed.Mode, partial string) mo.Option[string] {
	partial = sanitize(partial)
	candidates := lo.Filter(SuggestMany(mode, partial), func(id string, _ int) bool {
		return !strings.EqualFold(id, partial)
	})

	if len(candidates) == 0 {
		return mo.None[string]()
	}
	return mo.Some(candidates[0])
}

// SuggestMany lists matching identifiers of mode, highest rank first.
func SuggestMany(mode embed.Mode, partial string) []string {
	if !Enabled() {
		return []string{}
	}

	partial = sanitize(partial)
	if partial == "" {
		return []string{}
	}

	cached, _, err := store().Get()
	if err != nil || cached == nil {
		return []string{}
	}

	matches := lo.Filter(lo.Values(cached), func(r *record, _ int) bool {
		return r.Mode == mode && fuzzy.MatchFold(partial, r.ID)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.ID, b.ID)
	})

	return lo.Map(matches, func(r *record, _ int) string {
		return r.ID
	})
}

// sanitize trims surrounding blanks. Identifiers are otherwise kept verbatim.
func sanitize(id string) string {
	return strings.TrimSpace(id)
}
