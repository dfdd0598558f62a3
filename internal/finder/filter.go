package finder

import (
	"sort"
	"strings"

	"github.com/findy-ai/property-engine/internal/dataset"
)

// SearchRecords applies criteria to a property snapshot and returns the
// matches ordered by ascending price. It never mutates its input; the result
// is a fresh slice. Empty criteria match everything, so a query with no
// extractable filters degrades to browsing the full dataset.
func SearchRecords(properties []dataset.Property, c Criteria) []dataset.Property {
	matched := make([]dataset.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, c) {
			matched = append(matched, p)
		}
	}

	// Stable so that equally priced listings keep their snapshot order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Price < matched[j].Price
	})
	return matched
}

func matches(p dataset.Property, c Criteria) bool {
	if c.Neighborhood != "" && !neighborhoodMatches(p.Neighborhood, c.Neighborhood) {
		return false
	}
	if c.PropertyType != "" {
		if !strings.Contains(canonicalize(p.PropertyType), canonicalize(c.PropertyType)) {
			return false
		}
	}
	if c.PriceMin != nil && p.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && p.Price > *c.PriceMax {
		return false
	}
	if c.BedroomsMin != nil && p.Bedrooms < *c.BedroomsMin {
		return false
	}
	if c.BedroomsMax != nil && p.Bedrooms > *c.BedroomsMax {
		return false
	}
	if c.BathroomsMin != nil && p.Bathrooms < *c.BathroomsMin {
		return false
	}
	if c.AreaMin != nil && p.TotalArea < *c.AreaMin {
		return false
	}
	if c.AreaMax != nil && p.TotalArea > *c.AreaMax {
		return false
	}
	return true
}

// neighborhoodMatches compares diacritic-insensitively and in both
// directions, so "centro" matches a listing tagged "Centro Historico" and
// "barrio general paz" matches a criterion of "general paz".
func neighborhoodMatches(listing, wanted string) bool {
	l := canonicalize(listing)
	w := canonicalize(wanted)
	if l == "" || w == "" {
		return false
	}
	return strings.Contains(l, w) || strings.Contains(w, l)
}
