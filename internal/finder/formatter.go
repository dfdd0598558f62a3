package finder

import (
	"fmt"
	"strings"
	"time"

	"github.com/findy-ai/property-engine/internal/dataset"
)

// maxDisplayed is the default cap on how many listings a single reply shows;
// results beyond it are summarized by a truncation notice.
const maxDisplayed = 10

// FormatResults renders matched listings as a Spanish chat reply. The input
// is assumed sorted cheapest-first; only the first limit listings are
// expanded (zero or negative means the default cap).
func FormatResults(results []dataset.Property, c Criteria, limit int) string {
	if len(results) == 0 {
		return FormatNoResults(c)
	}
	if limit <= 0 {
		limit = maxDisplayed
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d propiedades", len(results))
	if summary := criteriaSummary(c); summary != "" {
		b.WriteString(" ")
		b.WriteString(summary)
	}
	b.WriteString(":\n\n")

	shown := results
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, p := range shown {
		b.WriteString(formatProperty(i+1, p))
		b.WriteString("\n")
	}

	if len(results) > limit {
		fmt.Fprintf(&b, "... y %d propiedades más. Agregá filtros (barrio, precio, dormitorios) para acotar la búsqueda.\n", len(results)-limit)
	}

	b.WriteString("\n¿Te interesa información más detallada de alguna propiedad? Indicame el número.")
	return b.String()
}

// FormatNoResults explains an empty match and suggests loosening filters.
func FormatNoResults(c Criteria) string {
	var b strings.Builder
	b.WriteString("No encontré propiedades")
	if summary := criteriaSummary(c); summary != "" {
		b.WriteString(" ")
		b.WriteString(summary)
	}
	b.WriteString(".\n\nProbá:\n• Ampliar el rango de precio\n• Buscar en barrios cercanos\n• Quitar algún filtro (por ejemplo, \"sin precio\")")
	return b.String()
}

func formatProperty(n int, p dataset.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. 🏠 %s", n, p.PropertyType)
	if p.Neighborhood != "" {
		fmt.Fprintf(&b, " en %s", p.Neighborhood)
	}
	b.WriteString("\n")
	if p.Price > 0 {
		fmt.Fprintf(&b, "   💰 $%s USD\n", formatThousands(p.Price))
	}
	var details []string
	if p.Bedrooms > 0 {
		details = append(details, fmt.Sprintf("🛏️ %d dorm", p.Bedrooms))
	}
	if p.Bathrooms > 0 {
		details = append(details, fmt.Sprintf("🚿 %d baños", p.Bathrooms))
	}
	if p.TotalArea > 0 {
		details = append(details, fmt.Sprintf("📐 %d m2", p.TotalArea))
	}
	if len(details) > 0 {
		fmt.Fprintf(&b, "   %s\n", strings.Join(details, " · "))
	}
	if p.Address != "" {
		fmt.Fprintf(&b, "   📍 %s\n", p.Address)
	}
	if days, ok := daysListed(p.PublishedDate); ok {
		fmt.Fprintf(&b, "   🗓️ Publicada hace %d días\n", days)
	}
	if p.ListingURL != "" {
		fmt.Fprintf(&b, "   🔗 %s\n", p.ListingURL)
	}
	return b.String()
}

// criteriaSummary renders active filters as a compact emoji-tagged phrase,
// e.g. "📍 nueva córdoba · 💰 hasta $120,000".
func criteriaSummary(c Criteria) string {
	var parts []string
	if c.Neighborhood != "" {
		parts = append(parts, "📍 "+c.Neighborhood)
	}
	if c.PropertyType != "" {
		parts = append(parts, "🏢 "+c.PropertyType)
	}
	if s := rangeSummary("🛏️", c.BedroomsMin, c.BedroomsMax, "dorm"); s != "" {
		parts = append(parts, s)
	}
	if c.BathroomsMin != nil {
		parts = append(parts, fmt.Sprintf("🚿 %d+ baños", *c.BathroomsMin))
	}
	if s := rangeSummary("📐", c.AreaMin, c.AreaMax, "m2"); s != "" {
		parts = append(parts, s)
	}
	if s := priceSummary(c.PriceMin, c.PriceMax); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " · ") + ")"
}

func rangeSummary(icon string, min, max *int, unit string) string {
	switch {
	case min != nil && max != nil && *min == *max:
		return fmt.Sprintf("%s %d %s", icon, *min, unit)
	case min != nil && max != nil:
		return fmt.Sprintf("%s %d a %d %s", icon, *min, *max, unit)
	case min != nil:
		return fmt.Sprintf("%s desde %d %s", icon, *min, unit)
	case max != nil:
		return fmt.Sprintf("%s hasta %d %s", icon, *max, unit)
	}
	return ""
}

func priceSummary(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("💰 $%s a $%s", formatThousands(*min), formatThousands(*max))
	case min != nil:
		return fmt.Sprintf("💰 desde $%s", formatThousands(*min))
	case max != nil:
		return fmt.Sprintf("💰 hasta $%s", formatThousands(*max))
	}
	return ""
}

// formatThousands renders 120000 as "120,000".
func formatThousands(n int) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// daysListed parses the snapshot's publication date and returns how many days
// the listing has been up. Unparseable dates are simply omitted.
func daysListed(published string) (int, bool) {
	published = strings.TrimSpace(published)
	if published == "" {
		return 0, false
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, published); err == nil {
			days := int(time.Since(t).Hours() / 24)
			if days < 0 {
				days = 0
			}
			return days, true
		}
	}
	return 0, false
}
