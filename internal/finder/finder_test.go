package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findy-ai/property-engine/internal/dataset"
)

func newTestService(props []dataset.Property) *Service {
	return NewService(dataset.Static(props), nil, 0)
}

func TestGenerateResponseConversationalSkipsSearch(t *testing.T) {
	svc := newTestService(sampleProperties())

	searched := false
	svc.searchFn = func(props []dataset.Property, c Criteria) []dataset.Property {
		searched = true
		return SearchRecords(props, c)
	}

	resp := svc.GenerateResponse("hola", nil)

	assert.False(t, searched, "conversational message must not run a search")
	assert.True(t, resp.Conversational)
	assert.Contains(t, resp.Reply, "5 propiedades")
	assert.Zero(t, resp.TotalMatches)
}

func TestGenerateResponseSearchScenario(t *testing.T) {
	svc := newTestService(sampleProperties())

	resp := svc.GenerateResponse("departamentos en nueva córdoba", nil)

	assert.False(t, resp.Conversational)
	assert.Equal(t, "nueva córdoba", resp.Criteria.Neighborhood)
	assert.Equal(t, "departamento", resp.Criteria.PropertyType)
	require.Len(t, resp.Results, 2)
	// Cheapest first.
	assert.Equal(t, "prop_4", resp.Results[0].ID)
	assert.Equal(t, "prop_0", resp.Results[1].ID)
	assert.Contains(t, resp.Reply, "Encontré 2 propiedades")
}

func TestGenerateResponseModificationScenario(t *testing.T) {
	svc := newTestService(sampleProperties())

	history := []Message{
		{Role: "user", Content: "departamentos en el centro hasta $100,000"},
		{Role: "assistant", Content: "Encontré 1 propiedades..."},
	}
	resp := svc.GenerateResponse("pero en nueva córdoba", history)

	// Neighborhood replaced, budget carried over.
	assert.Equal(t, "nueva córdoba", resp.Criteria.Neighborhood)
	require.NotNil(t, resp.Criteria.PriceMax)
	assert.Equal(t, 100000, *resp.Criteria.PriceMax)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "prop_4", resp.Results[0].ID)
}

func TestGenerateResponseNoMatches(t *testing.T) {
	svc := newTestService(sampleProperties())

	resp := svc.GenerateResponse("casas en la falda hasta $10,000", nil)

	assert.Zero(t, resp.TotalMatches)
	assert.Empty(t, resp.Results)
	assert.Contains(t, resp.Reply, "No encontré propiedades")
}

func TestGenerateResponseEmptyQueryBrowsesAll(t *testing.T) {
	svc := newTestService(sampleProperties())

	resp := svc.GenerateResponse("mostrame propiedades disponibles", nil)

	assert.True(t, resp.Criteria.IsEmpty())
	assert.Equal(t, len(sampleProperties()), resp.TotalMatches)
}

func TestGenerateResponseCapsReturnedResults(t *testing.T) {
	var props []dataset.Property
	for i := 0; i < 30; i++ {
		props = append(props, dataset.Property{ID: "p", PropertyType: "Casa", Price: 1000 + i})
	}
	svc := newTestService(props)

	resp := svc.GenerateResponse("casas", nil)

	assert.Equal(t, 30, resp.TotalMatches)
	assert.Len(t, resp.Results, 10)
}

func TestGenerateResponseConfiguredMaxResults(t *testing.T) {
	var props []dataset.Property
	for i := 0; i < 30; i++ {
		props = append(props, dataset.Property{ID: "p", PropertyType: "Casa", Price: 1000 + i})
	}
	svc := NewService(dataset.Static(props), nil, 5)

	resp := svc.GenerateResponse("casas", nil)

	assert.Equal(t, 30, resp.TotalMatches)
	assert.Len(t, resp.Results, 5)
	assert.Contains(t, resp.Reply, "25 propiedades más")
}

func TestGenerateResponseApartmentUnderBudget(t *testing.T) {
	svc := newTestService([]dataset.Property{
		{ID: "apt", Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 95000},
		{ID: "house", Neighborhood: "Centro", PropertyType: "Casa", Price: 80000},
	})

	resp := svc.GenerateResponse("Departamentos en Nueva Córdoba hasta 100000 USD", nil)

	assert.Equal(t, "departamento", resp.Criteria.PropertyType)
	assert.Equal(t, "nueva córdoba", resp.Criteria.Neighborhood)
	require.NotNil(t, resp.Criteria.PriceMax)
	assert.Equal(t, 100000, *resp.Criteria.PriceMax)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "apt", resp.Results[0].ID)
}

func TestExtractBedroomRangeScenario(t *testing.T) {
	c := Extract("casas de 2 a 3 dormitorios")

	assert.Equal(t, "casa", c.PropertyType)
	require.NotNil(t, c.BedroomsMin)
	require.NotNil(t, c.BedroomsMax)
	assert.Equal(t, 2, *c.BedroomsMin)
	assert.Equal(t, 3, *c.BedroomsMax)
	assert.Empty(t, c.Neighborhood)
	assert.Nil(t, c.PriceMin)
	assert.Nil(t, c.PriceMax)
	assert.Nil(t, c.AreaMin)
	assert.Nil(t, c.AreaMax)
}

func TestServiceSearchStructured(t *testing.T) {
	svc := newTestService(sampleProperties())

	results := svc.Search(Criteria{PropertyType: "departamento"})
	assert.Len(t, results, 3)
}
