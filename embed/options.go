package embed

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Options is an ordered set of query parameter assignments.
// The zero value is empty and ready to use.
type Options struct {
	values map[string]string
}

// Set validates and stores a value for the named parameter.
func (o *Options) Set(name, value string) error {
	param, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	normalized, err := param.Kind.Normalize(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if o.values == nil {
		o.values = make(map[string]string)
	}
	o.values[name] = normalized
	return nil
}

// Unset removes an assignment.
func (o *Options) Unset(name string) {
	delete(o.values, name)
}

// Get returns the stored value.
func (o Options) Get(name string) (string, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Len is the number of assignments.
func (o Options) Len() int {
	return len(o.values)
}

// Encode renders the assignments as a query string, in registry order.
func (o Options) Encode() string {
	pairs := lo.FilterMap(registry, func(p Parameter, _ int) (string, bool) {
		v, ok := o.values[p.Name]
		return p.Name + "=" + v, ok
	})
	return strings.Join(pairs, "&")
}

// ParseOptions collects every documented parameter present in lookup.
// Names lookup does not know are skipped, invalid values are reported.
func ParseOptions(lookup func(name string) (string, bool)) (Options, error) {
	var opts Options
	for _, p := range registry {
		value, ok := lookup(p.Name)
		if !ok {
			continue
		}
		if err := opts.Set(p.Name, value); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}
