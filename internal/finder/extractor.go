package finder

import (
	"regexp"
	"strconv"
	"strings"
)

// Field extractors below all run against a canonicalized copy of the query
// (lowercased, whitespace-collapsed, accents folded), so every pattern is
// spelled accent-free. Each extractor is independent and pure: no match
// simply leaves the field absent.

var (
	bedroomRangeRe  = regexp.MustCompile(`(\d+)\s*a\s*(\d+)\s*(?:dormitorios?|habitaciones?|dorm)`)
	bedroomSingleRe = regexp.MustCompile(`(\d+)\s*(?:dormitorios?|habitaciones?|dorm|amb)`)
	bathroomRe      = regexp.MustCompile(`(\d+)\s*banos?`)

	// areaMentionRe gates the price/area mutual exclusion: any numeric
	// meters mention disables price extraction for the whole query.
	areaMentionRe = regexp.MustCompile(`\d+\s*(?:m2|metros?)`)
)

// areaPatterns is tried in priority order; the first matching class wins.
// kind decides how the captured number(s) land on the criteria.
var areaPatterns = []struct {
	re   *regexp.Regexp
	kind rangeKind
}{
	{regexp.MustCompile(`entre\s+(\d+)\s+y\s+(\d+)\s*(?:m2|metros?)`), rangeBoth},
	{regexp.MustCompile(`desde\s+(\d+)\s*(?:m2|metros?)`), rangeMin},
	{regexp.MustCompile(`hasta\s+(\d+)\s*(?:m2|metros?)`), rangeMax},
	{regexp.MustCompile(`mas\s+de\s+(\d+)\s*(?:m2|metros?)`), rangeMin},
	{regexp.MustCompile(`minimo\s+(\d+)\s*(?:m2|metros?)`), rangeMin},
	{regexp.MustCompile(`maximo\s+(\d+)\s*(?:m2|metros?)`), rangeMax},
	{regexp.MustCompile(`(\d+)\s*(?:m2|metros?)\s*totales`), rangeMin},
	// Bare "X metros" is the lowest priority; a bare area value defaults
	// to a minimum.
	{regexp.MustCompile(`(\d+)\s*(?:m2|metros?)`), rangeMin},
}

type rangeKind int

const (
	rangeMin rangeKind = iota
	rangeMax
	rangeBoth
)

var (
	priceRangeRe = regexp.MustCompile(`entre\s+\$?\s*(\d+(?:,\d+)*)\s+y\s+\$?\s*(\d+(?:,\d+)*)\s*(?:usd|dolares?|mil|k)?`)

	// priceSingleRes collect candidate amounts; the captured text decides
	// the k/mil multiplier per match.
	priceSingleRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+(?:,\d+)*)\s*(?:k|mil)\s*(?:usd|dolares?)`),
		regexp.MustCompile(`(\d+(?:,\d+)*)\s*(?:k|mil)\b`),
		regexp.MustCompile(`\$\s*(\d+(?:,\d+)*)\s*(?:k|mil|usd)?`),
		regexp.MustCompile(`(?:precio|presupuesto|costo|vale)\s+(?:de\s+)?\$?\s*(\d+(?:,\d+)*)(?:\s*(?:k|mil))?`),
		regexp.MustCompile(`(?:hasta|maximo)\s+\$?\s*(\d+(?:,\d+)*)\s*(?:usd|dolares?|mil|k)`),
		regexp.MustCompile(`(?:desde|minimo)\s+\$?\s*(\d+(?:,\d+)*)\s*(?:usd|dolares?|mil|k)`),
	}

	priceIndicators = []string{"precio", "presupuesto", "$", "usd", "k", "mil", "dolar"}
)

// Extract derives structured search criteria from a free-text query. It is a
// pure function of the query text: calling it twice on the same input yields
// identical criteria, and malformed input never fails, it just extracts
// nothing.
func Extract(query string) Criteria {
	q := canonicalize(query)

	var c Criteria
	c.Neighborhood = detectNeighborhood(q)
	c.PropertyType = detectPropertyType(q)
	extractBedrooms(q, &c)
	extractBathrooms(q, &c)

	// Area and price extraction are mutually exclusive per query: a bare
	// number next to a meters unit must never be misread as a price.
	if areaMentionRe.MatchString(q) {
		extractArea(q, &c)
	} else {
		extractPrice(q, &c)
	}

	return c
}

// detectPropertyType maps type keywords to the snapshot's typology labels.
// The first matching keyword wins.
func detectPropertyType(q string) string {
	switch {
	case strings.Contains(q, "departamento") || strings.Contains(q, "depto"):
		return "departamento"
	case strings.Contains(q, "casa"):
		return "casa"
	case strings.Contains(q, "ph") || strings.Contains(q, "duplex"):
		return "ph"
	}
	return ""
}

func extractBedrooms(q string, c *Criteria) {
	if m := bedroomSingleRe.FindStringSubmatch(q); m != nil {
		n := mustAtoi(m[1])
		switch {
		case strings.Contains(q, "hasta"):
			c.BedroomsMax = intPtr(n)
		case strings.Contains(q, "desde"):
			c.BedroomsMin = intPtr(n)
		default:
			// No direction keyword means an exact count.
			c.BedroomsMin = intPtr(n)
			c.BedroomsMax = intPtr(n)
		}
	}

	// An explicit "N a M dormitorios" range is more specific and overrides
	// whatever the single-count pattern inferred.
	if m := bedroomRangeRe.FindStringSubmatch(q); m != nil {
		c.BedroomsMin = intPtr(mustAtoi(m[1]))
		c.BedroomsMax = intPtr(mustAtoi(m[2]))
	}
}

func extractBathrooms(q string, c *Criteria) {
	if m := bathroomRe.FindStringSubmatch(q); m != nil {
		// Bathrooms only ever set a floor; there is no max concept.
		c.BathroomsMin = intPtr(mustAtoi(m[1]))
	}
}

func extractArea(q string, c *Criteria) {
	for _, p := range areaPatterns {
		m := p.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		switch p.kind {
		case rangeBoth:
			lo, hi := mustAtoi(m[1]), mustAtoi(m[2])
			if lo > hi {
				lo, hi = hi, lo
			}
			c.AreaMin = intPtr(lo)
			c.AreaMax = intPtr(hi)
		case rangeMin:
			c.AreaMin = intPtr(mustAtoi(m[1]))
		case rangeMax:
			c.AreaMax = intPtr(mustAtoi(m[1]))
		}
		return
	}
}

func extractPrice(q string, c *Criteria) {
	if !hasPriceIndicator(q) {
		return
	}

	if m := priceRangeRe.FindStringSubmatch(q); m != nil && strings.Contains(q, "entre") {
		mult := multiplierFor(m[0])
		lo := parseAmount(m[1]) * mult
		hi := parseAmount(m[2]) * mult
		if lo > hi {
			lo, hi = hi, lo
		}
		c.PriceMin = intPtr(lo)
		c.PriceMax = intPtr(hi)
		return
	}

	detected := detectAmounts(q)
	if len(detected) == 0 {
		return
	}

	switch {
	case strings.Contains(q, "hasta") || strings.Contains(q, "maximo"):
		c.PriceMax = intPtr(maxOf(detected))
	case strings.Contains(q, "desde") || strings.Contains(q, "minimo"):
		c.PriceMin = intPtr(minOf(detected))
	case len(detected) == 1:
		// A lone amount with no direction is read conservatively as a
		// budget ceiling. Note the asymmetry with area, where a bare
		// value defaults to a minimum; both conventions are preserved
		// as documented policy.
		c.PriceMax = intPtr(detected[0])
	}
}

// detectAmounts collects every candidate price in the query, applying k/mil
// multipliers per match. Values are deduplicated because several patterns can
// capture the same amount.
func detectAmounts(q string) []int {
	seen := make(map[int]bool)
	var amounts []int
	for _, re := range priceSingleRes {
		for _, m := range re.FindAllStringSubmatch(q, -1) {
			v := parseAmount(m[1]) * multiplierFor(m[0])
			if !seen[v] {
				seen[v] = true
				amounts = append(amounts, v)
			}
		}
	}
	return amounts
}

func hasPriceIndicator(q string) bool {
	for _, tok := range priceIndicators {
		if strings.Contains(q, tok) {
			return true
		}
	}
	return false
}

func multiplierFor(matched string) int {
	if strings.Contains(matched, "k") || strings.Contains(matched, "mil") {
		return 1000
	}
	return 1
}

func parseAmount(s string) int {
	return mustAtoi(strings.ReplaceAll(s, ",", ""))
}

// mustAtoi parses digits already validated by a \d+ capture group.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func minOf(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
