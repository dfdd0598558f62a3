package finder

import (
	"fmt"
	"strings"
)

// ConversationCategory labels a small-talk message so the engine can reply
// without touching the property snapshot.
type ConversationCategory string

const (
	CategoryGreeting ConversationCategory = "greeting"
	CategoryHelp     ConversationCategory = "help"
	CategoryThanks   ConversationCategory = "thanks"
	CategoryFarewell ConversationCategory = "farewell"
	CategoryCasual   ConversationCategory = "casual"
)

var conversationCues = []struct {
	category ConversationCategory
	tokens   []string
}{
	{CategoryGreeting, []string{"hola", "buenas", "buen dia", "buenos dias", "buenas tardes", "buenas noches", "que tal", "como estas", "como andas"}},
	{CategoryHelp, []string{"ayuda", "ayudame", "que podes hacer", "que puedes hacer", "como funciona", "como te uso", "que haces"}},
	{CategoryThanks, []string{"gracias", "muchas gracias", "genial", "perfecto", "excelente", "buenisimo"}},
	{CategoryFarewell, []string{"chau", "adios", "hasta luego", "nos vemos", "hasta pronto"}},
}

// ClassifyConversational reports whether a message is small talk rather than
// a property query, and which kind. Very short messages are treated as casual
// chatter since no meaningful criteria fit in under four characters.
func ClassifyConversational(message string) (ConversationCategory, bool) {
	q := canonicalize(message)
	if q == "" {
		return CategoryCasual, true
	}
	if len(q) < 4 {
		return CategoryCasual, true
	}
	for _, cue := range conversationCues {
		for _, tok := range cue.tokens {
			if strings.Contains(q, tok) {
				return cue.category, true
			}
		}
	}
	return "", false
}

// ConversationalReply builds the canned Spanish reply for a small-talk
// category. datasetSize lets greetings and help mention the live inventory.
func ConversationalReply(category ConversationCategory, datasetSize int) string {
	switch category {
	case CategoryGreeting:
		return fmt.Sprintf("¡Hola! 👋 Soy tu asistente inmobiliario. Tengo %d propiedades disponibles en Córdoba.\n\nPodés preguntarme cosas como:\n• \"departamentos en Nueva Córdoba\"\n• \"casas de 3 dormitorios hasta $150,000\"\n• \"propiedades de más de 100 metros en Villa Allende\"\n\n¿Qué estás buscando?", datasetSize)
	case CategoryHelp:
		return fmt.Sprintf("Te ayudo a buscar entre %d propiedades de Córdoba. Podés filtrar por:\n\n📍 Barrio: \"departamentos en el Centro\"\n🏢 Tipo: departamento, casa o PH\n🛏️ Dormitorios: \"2 dormitorios\" o \"hasta 3 dormitorios\"\n🚿 Baños: \"2 baños\"\n📐 Superficie: \"más de 80 m2\"\n💰 Precio: \"hasta $120,000\" o \"presupuesto de 100 mil\"\n\nCombiná los filtros como quieras en una sola frase.", datasetSize)
	case CategoryThanks:
		return "¡De nada! 😊 Si querés seguir buscando propiedades, acá estoy."
	case CategoryFarewell:
		return "¡Hasta luego! 👋 Cuando quieras buscar propiedades de nuevo, escribime."
	default:
		return "Soy un asistente de búsqueda de propiedades en Córdoba. Contame qué tipo de propiedad buscás, en qué barrio o con qué presupuesto, y te muestro opciones."
	}
}
