// Package categories expands a category name ("winter sports") into a list
// of sports from an embedded catalog, as a convenience for interactive
// config creation. Lookups degrade gracefully: an unknown category yields an
// empty result rather than an error.
package categories

import (
	"embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogFS embed.FS

type catalog struct {
	Categories map[string][]string `yaml:"categories"`
}

func load() map[string][]string {
	data, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil
	}

	return c.Categories
}

// List returns the known category names, sorted.
func List() []string {
	cats := load()

	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Expand returns the sports in the named category. The name is normalized
// like a sport entry (trimmed, lowercased). Unknown categories return nil.
func Expand(name string) []string {
	cats := load()

	sports, ok := cats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}

	out := make([]string, len(sports))
	copy(out, sports)

	return out
}
