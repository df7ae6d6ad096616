// Package gazetteer bundles the static table of known Nigerian places used
// as the fastest resolution strategy before any network call.
package gazetteer

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var locationsYAML []byte

// Entry is a single known place.
type Entry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	City string  `yaml:"city"`
}

// FormattedAddress returns the synthesized display address for the entry.
func (e Entry) FormattedAddress() string {
	return fmt.Sprintf("%s, %s, Nigeria", TitleCase(e.Name), e.City)
}

// Gazetteer holds the place table ordered for deterministic lookup:
// longest name first, ties broken by table order. A longer name is always
// the more specific match ("wuse 2" beats "wuse", "garki 2" beats "garki").
type Gazetteer struct {
	entries []Entry
}

type tableFile struct {
	Locations []Entry `yaml:"locations"`
}

// Load parses the embedded place table.
func Load() (*Gazetteer, error) {
	var file tableFile
	if err := yaml.Unmarshal(locationsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse gazetteer table: %w", err)
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("gazetteer table is empty")
	}

	entries := append([]Entry(nil), file.Locations...)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Name) > len(entries[j].Name)
	})

	return &Gazetteer{entries: entries}, nil
}

// noiseTokens are administrative filler words stripped before matching.
// Order matters: longer tokens are listed before their substrings
// ("estate" before "state", "extension" before "ext").
var noiseTokens = []string{
	"street", "road", "avenue", "close", "crescent", "drive",
	"estate", "layout", "phase", "extension", "ext", "nigeria",
	"fct", "state", ",", ".", "-", "near", "opposite", "beside",
	"behind", "after", "before", "junction", "bus stop",
}

// Normalize lowercases the address, strips noise tokens and collapses
// whitespace, producing the form the lookup table is matched against.
func Normalize(address string) string {
	normalized := strings.ToLower(strings.TrimSpace(address))
	for _, token := range noiseTokens {
		normalized = strings.ReplaceAll(normalized, token, " ")
	}
	return strings.Join(strings.Fields(normalized), " ")
}

// Lookup scans for any entry whose name is a substring of the given string.
// Callers pass either a normalized address (known-location strategy) or the
// raw lowercased address (city-level fallback). Longest name wins.
func (g *Gazetteer) Lookup(haystack string) (Entry, bool) {
	for _, entry := range g.entries {
		if strings.Contains(haystack, entry.Name) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries in the table.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

// TitleCase capitalizes the first letter of each space-separated word.
// Place names in the table are stored lowercase.
func TitleCase(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
