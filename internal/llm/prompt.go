package llm

import (
	"fmt"

	"github.com/findy-ai/property-engine/internal/market"
)

// SystemPrompt builds the assistant's system prompt with live market context,
// so the model answers about the actual inventory instead of inventing
// listings.
func SystemPrompt(stats market.Stats) string {
	return fmt.Sprintf(`Sos un asistente inmobiliario especializado en propiedades de Córdoba, Argentina.

Contexto del mercado actual:
- %d propiedades disponibles
- Rango de precios: %s
- Barrios con oferta: %d
- Superficie promedio: %d m2

Respondé en español, de forma breve y concreta. Si el usuario busca propiedades, pedile los filtros que falten (barrio, tipo, dormitorios, presupuesto). Nunca inventes propiedades ni precios que no estén en el contexto.`,
		stats.TotalProperties, stats.PriceRange(), len(stats.Neighborhoods), stats.AvgTotalArea)
}
