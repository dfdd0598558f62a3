// Package market computes aggregate statistics over the property snapshot,
// powering the stats endpoint and the context given to the language model.
package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/findy-ai/property-engine/internal/dataset"
)

// Stats summarizes the property snapshot.
type Stats struct {
	TotalProperties int            `json:"totalProperties"`
	PriceMin        int            `json:"priceMin"`
	PriceAvg        int            `json:"priceAvg"`
	PriceMax        int            `json:"priceMax"`
	AvgTotalArea    int            `json:"avgTotalArea"`
	Neighborhoods   []string       `json:"neighborhoods"`
	PropertyTypes   []string       `json:"propertyTypes"`
	ByNeighborhood  map[string]int `json:"byNeighborhood"`
	ByPropertyType  map[string]int `json:"byPropertyType"`
}

// Filter narrows a snapshot to one property type and/or neighborhood before
// computing statistics. Empty arguments mean no restriction; matching is
// case-insensitive substring on both sides.
func Filter(properties []dataset.Property, propertyType, neighborhood string) []dataset.Property {
	if propertyType == "" && neighborhood == "" {
		return properties
	}
	wantType := strings.ToLower(strings.TrimSpace(propertyType))
	wantHood := strings.ToLower(strings.TrimSpace(neighborhood))

	var out []dataset.Property
	for _, p := range properties {
		if wantType != "" && !strings.Contains(strings.ToLower(p.PropertyType), wantType) {
			continue
		}
		if wantHood != "" && !strings.Contains(strings.ToLower(p.Neighborhood), wantHood) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Compute derives snapshot statistics. Listings without a price are excluded
// from the price aggregates but still counted everywhere else.
func Compute(properties []dataset.Property) Stats {
	s := Stats{
		TotalProperties: len(properties),
		ByNeighborhood:  make(map[string]int),
		ByPropertyType:  make(map[string]int),
	}

	var priceSum, priced, areaSum, sized int
	for _, p := range properties {
		if p.Price > 0 {
			if priced == 0 || p.Price < s.PriceMin {
				s.PriceMin = p.Price
			}
			if p.Price > s.PriceMax {
				s.PriceMax = p.Price
			}
			priceSum += p.Price
			priced++
		}
		if p.TotalArea > 0 {
			areaSum += p.TotalArea
			sized++
		}
		if n := strings.TrimSpace(p.Neighborhood); n != "" {
			s.ByNeighborhood[n]++
		}
		if t := strings.TrimSpace(p.PropertyType); t != "" {
			s.ByPropertyType[t]++
		}
	}

	if priced > 0 {
		s.PriceAvg = priceSum / priced
	}
	if sized > 0 {
		s.AvgTotalArea = areaSum / sized
	}
	s.Neighborhoods = sortedKeys(s.ByNeighborhood)
	s.PropertyTypes = sortedKeys(s.ByPropertyType)
	return s
}

// PriceRange renders the snapshot's price spread in the compact form used in
// summaries, e.g. "$47K - $675K USD".
func (s Stats) PriceRange() string {
	if s.PriceMax == 0 {
		return "sin datos de precio"
	}
	return fmt.Sprintf("%s - %s USD", abbreviate(s.PriceMin), abbreviate(s.PriceMax))
}

// Summary renders a short Spanish description of the market snapshot.
func (s Stats) Summary() string {
	return fmt.Sprintf(
		"%d propiedades en %d barrios. Precios: %s, promedio $%d. Superficie promedio: %d m2.",
		s.TotalProperties, len(s.Neighborhoods), s.PriceRange(), s.PriceAvg, s.AvgTotalArea,
	)
}

// abbreviate renders 47500 as "$47K" and 950 as "$950".
func abbreviate(v int) string {
	if v >= 1000 {
		return fmt.Sprintf("$%dK", v/1000)
	}
	return fmt.Sprintf("$%d", v)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
