package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findy-ai/property-engine/internal/cache"
	"github.com/findy-ai/property-engine/internal/dataset"
	"github.com/findy-ai/property-engine/internal/finder"
	"github.com/findy-ai/property-engine/internal/llm"
)

func testSnapshot() dataset.Static {
	return dataset.Static{
		{ID: "prop_0", Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 120000, Bedrooms: 2},
		{ID: "prop_1", Neighborhood: "Centro", PropertyType: "Departamento", Price: 85000, Bedrooms: 1},
		{ID: "prop_2", Neighborhood: "Villa Allende", PropertyType: "Casa", Price: 250000, Bedrooms: 3},
	}
}

type stubCompleter struct {
	reply      string
	err        error
	calls      int
	lastSystem string
}

func (s *stubCompleter) Complete(_ context.Context, system string, _ []llm.ChatMessage) (string, error) {
	s.calls++
	s.lastSystem = system
	return s.reply, s.err
}

func TestChatFinderTier(t *testing.T) {
	completer := &stubCompleter{reply: "no deberia llamarse"}
	e := New(testSnapshot(), Options{Completer: completer})

	result := e.Chat(context.Background(), "departamentos en el centro", "", nil)

	assert.Equal(t, SourceFinder, result.Source)
	assert.False(t, result.Fallback)
	assert.Equal(t, 1, result.TotalMatches)
	assert.Zero(t, completer.calls, "finder answer must not reach the model")
}

func TestChatConversationalStaysInFinderTier(t *testing.T) {
	e := New(testSnapshot(), Options{})

	result := e.Chat(context.Background(), "hola", "", nil)

	assert.Equal(t, SourceFinder, result.Source)
	assert.Contains(t, result.Response, "3 propiedades")
}

func TestChatLLMTier(t *testing.T) {
	completer := &stubCompleter{reply: "¿En qué barrio te gustaría vivir?"}
	e := New(testSnapshot(), Options{Completer: completer})

	result := e.Chat(context.Background(), "quiero mudarme con mi familia pronto", "", nil)

	assert.Equal(t, SourceLLM, result.Source)
	assert.True(t, result.Fallback)
	assert.Equal(t, completer.reply, result.Response)
	assert.Equal(t, 1, completer.calls)
}

func TestChatStaticTierWhenModelFails(t *testing.T) {
	completer := &stubCompleter{err: errors.New("rate limited")}
	e := New(testSnapshot(), Options{Completer: completer})

	result := e.Chat(context.Background(), "quiero mudarme con mi familia pronto", "", nil)

	assert.Equal(t, SourceStatic, result.Source)
	assert.True(t, result.Fallback)
	assert.Contains(t, result.Response, "ayuda")
}

func TestChatStaticTierWhenModelDisabled(t *testing.T) {
	e := New(testSnapshot(), Options{})

	result := e.Chat(context.Background(), "quiero mudarme con mi familia pronto", "", nil)

	assert.Equal(t, SourceStatic, result.Source)
}

func TestChatCachesHistoryFreeMessages(t *testing.T) {
	c := cache.NewMemoryClient(10)
	defer c.Close()
	e := New(testSnapshot(), Options{Cache: c, CacheTTL: time.Minute})

	first := e.Chat(context.Background(), "departamentos en el centro", "", nil)
	second := e.Chat(context.Background(), "departamentos en el centro", "", nil)

	// The cached result is replayed verbatim, timestamp included.
	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.Equal(t, first.Response, second.Response)
}

func TestChatContextReachesModel(t *testing.T) {
	completer := &stubCompleter{reply: "claro"}
	e := New(testSnapshot(), Options{Completer: completer})

	e.Chat(context.Background(), "quiero mudarme con mi familia pronto", "busca para una familia de cuatro", nil)

	require.Equal(t, 1, completer.calls)
	assert.Contains(t, completer.lastSystem, "busca para una familia de cuatro")
}

func TestChatAnnotatesReportRequests(t *testing.T) {
	completer := &stubCompleter{reply: "claro"}
	e := New(testSnapshot(), Options{Completer: completer})

	history := []finder.Message{
		{Role: "user", Content: "generame un reporte de lo que encontraste"},
		{Role: "assistant", Content: "Encontré 3 propiedades"},
	}
	e.Chat(context.Background(), "quiero mudarme con mi familia pronto", "", history)

	require.Equal(t, 1, completer.calls)
	assert.Contains(t, completer.lastSystem, "pidió un reporte")
}

func TestChatSkipsCacheWithContext(t *testing.T) {
	c := cache.NewMemoryClient(10)
	defer c.Close()
	e := New(testSnapshot(), Options{Cache: c, CacheTTL: time.Minute})

	first := e.Chat(context.Background(), "departamentos en el centro", "zona universitaria", nil)
	second := e.Chat(context.Background(), "departamentos en el centro", "zona universitaria", nil)

	assert.NotEqual(t, first.Timestamp, second.Timestamp)
}

func TestChatSkipsCacheWithHistory(t *testing.T) {
	c := cache.NewMemoryClient(10)
	defer c.Close()
	e := New(testSnapshot(), Options{Cache: c})

	history := []finder.Message{{Role: "user", Content: "casas en villa allende"}}
	first := e.Chat(context.Background(), "pero hasta $300,000", "", history)
	require.Equal(t, SourceFinder, first.Source)
	assert.Equal(t, "villa allende", first.Criteria.Neighborhood)
}

func TestSearchQuery(t *testing.T) {
	e := New(testSnapshot(), Options{})

	criteria, results := e.SearchQuery("casas en villa allende")
	assert.Equal(t, "casa", criteria.PropertyType)
	require.Len(t, results, 1)
	assert.Equal(t, "prop_2", results[0].ID)
}

func TestStats(t *testing.T) {
	e := New(testSnapshot(), Options{})

	stats := e.Stats()
	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 85000, stats.PriceMin)

	filtered := e.StatsFiltered("departamento", "")
	assert.Equal(t, 2, filtered.TotalProperties)
}

func TestReloadInvalidatesCache(t *testing.T) {
	c := cache.NewMemoryClient(10)
	defer c.Close()
	e := New(testSnapshot(), Options{Cache: c})

	first := e.Chat(context.Background(), "departamentos en el centro", "", nil)
	e.Reload(context.Background())
	second := e.Chat(context.Background(), "departamentos en el centro", "", nil)

	assert.NotEqual(t, first.Timestamp, second.Timestamp)
}
