package docs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/vidrock-cli/vidrock/util"
)

// ErrUnknownTab is returned by ParseTab for names outside the documentation.
var ErrUnknownTab = errors.New("unknown documentation tab")

// Tab selects the documentation section on display.
type Tab int

const (
	Embedding Tab = iota
	Customization
	WatchProgress
)

var tabs = []struct {
	id, title string
}{
	Embedding:     {"embedding", "Embedding"},
	Customization: {"customization", "Customization"},
	WatchProgress: {"watch-progress", "Watch Progress"},
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{Embedding, Customization, WatchProgress}
}

// ParseTab accepts a tab id, its title or its 1-based position.
func ParseTab(s string) (Tab, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)

	if n, err := strconv.Atoi(norm); err == nil && n >= 1 && n <= len(tabs) {
		return Tab(n - 1), nil
	}

	if t, ok := lo.Find(Tabs(), func(t Tab) bool { return tabs[t].id == norm }); ok {
		return t, nil
	}

	if norm == "progress" {
		return WatchProgress, nil
	}

	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTab, s, strings.Join(lo.Map(Tabs(), func(t Tab, _ int) string {
		return t.String()
	}), ", "))
}

func (t Tab) String() string {
	return tabs[t].id
}

// Title is the tab label.
func (t Tab) Title() string {
	return tabs[t].title
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab(util.Wrap(int(t), 1, len(tabs)))
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tab(util.Wrap(int(t), -1, len(tabs)))
}
