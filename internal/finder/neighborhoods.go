package finder

import (
	"regexp"
	"sort"
	"strings"
)

// knownNeighborhoods is the canonical spelling of every neighborhood the
// extractor recognizes. Accent and spelling variants collapse onto these
// canonical forms through canonicalize, so "guemes" and "Güemes" both map to
// "güemes".
var knownNeighborhoods = []string{
	"nueva córdoba",
	"centro",
	"villa allende",
	"güemes",
	"alberdi",
	"arguello",
	"cerro de las rosas",
	"villa belgrano",
	"barrio jardín",
	"alto verde",
	"villa carlos paz",
	"villa dolores",
	"la falda",
	"general paz",
	"san vicente",
	"cofico",
	"maipú",
	"observatorio",
	"yofre",
	"la france",
	"parque chacabuco",
	"las flores",
	"ciudad docta",
	"docta",
}

type neighborhoodEntry struct {
	canonical string
	folded    string
}

// neighborhoodDictionary holds the dictionary sorted longest-first so the
// most specific name wins ("ciudad docta" before "docta").
var neighborhoodDictionary = buildNeighborhoodDictionary()

func buildNeighborhoodDictionary() []neighborhoodEntry {
	entries := make([]neighborhoodEntry, 0, len(knownNeighborhoods))
	for _, name := range knownNeighborhoods {
		entries = append(entries, neighborhoodEntry{
			canonical: name,
			folded:    canonicalize(name),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].folded) > len(entries[j].folded)
	})
	return entries
}

// neighborhoodPatterns is the secondary net for multi-word neighborhoods
// written without separating whitespace. Patterns run against canonicalized
// text, so they are spelled accent-free.
var neighborhoodPatterns = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`nueva\s*cordoba`), "nueva córdoba"},
	{regexp.MustCompile(`villa\s*allende`), "villa allende"},
	{regexp.MustCompile(`cerro\s*de\s*las\s*rosas`), "cerro de las rosas"},
	{regexp.MustCompile(`villa\s*belgrano`), "villa belgrano"},
	{regexp.MustCompile(`barrio\s*jardin`), "barrio jardín"},
	{regexp.MustCompile(`alto\s*verde`), "alto verde"},
	{regexp.MustCompile(`villa\s*carlos\s*paz`), "villa carlos paz"},
	{regexp.MustCompile(`villa\s*dolores`), "villa dolores"},
	{regexp.MustCompile(`la\s*falda`), "la falda"},
}

// detectNeighborhood returns the canonical neighborhood mentioned in the
// canonicalized query, or "". Dictionary entries are checked first (longest
// alias wins), then the whitespace-tolerant patterns; the first hit wins.
func detectNeighborhood(q string) string {
	for _, entry := range neighborhoodDictionary {
		if strings.Contains(q, entry.folded) {
			return entry.canonical
		}
	}
	for _, p := range neighborhoodPatterns {
		if p.re.MatchString(q) {
			return p.canonical
		}
	}
	return ""
}
