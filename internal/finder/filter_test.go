package finder

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findy-ai/property-engine/internal/dataset"
)

func sampleProperties() []dataset.Property {
	return []dataset.Property{
		{ID: "prop_0", Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 120000, Bedrooms: 2, Bathrooms: 1, TotalArea: 65},
		{ID: "prop_1", Neighborhood: "Centro", PropertyType: "Departamento", Price: 85000, Bedrooms: 1, Bathrooms: 1, TotalArea: 40},
		{ID: "prop_2", Neighborhood: "Villa Allende", PropertyType: "Casa", Price: 250000, Bedrooms: 3, Bathrooms: 2, TotalArea: 180},
		{ID: "prop_3", Neighborhood: "Güemes", PropertyType: "PH", Price: 95000, Bedrooms: 2, Bathrooms: 1, TotalArea: 70},
		{ID: "prop_4", Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 95000, Bedrooms: 1, Bathrooms: 1, TotalArea: 45},
	}
}

func TestSearchRecordsEmptyCriteriaReturnsAll(t *testing.T) {
	props := sampleProperties()
	results := SearchRecords(props, Criteria{})
	assert.Len(t, results, len(props))
}

func TestSearchRecordsSortsByPriceAscending(t *testing.T) {
	results := SearchRecords(sampleProperties(), Criteria{})
	require.NotEmpty(t, results)
	assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	}))
}

func TestSearchRecordsSortIsStable(t *testing.T) {
	// prop_3 and prop_4 share a price; their snapshot order must survive.
	results := SearchRecords(sampleProperties(), Criteria{})
	var equalPriced []string
	for _, p := range results {
		if p.Price == 95000 {
			equalPriced = append(equalPriced, p.ID)
		}
	}
	assert.Equal(t, []string{"prop_3", "prop_4"}, equalPriced)
}

func TestSearchRecordsNeighborhoodMatchesBothDirections(t *testing.T) {
	props := []dataset.Property{
		{ID: "a", Neighborhood: "Centro Historico", Price: 1},
		{ID: "b", Neighborhood: "Centro", Price: 2},
		{ID: "c", Neighborhood: "Alberdi", Price: 3},
	}

	// Criterion shorter than listing tag.
	results := SearchRecords(props, Criteria{Neighborhood: "centro"})
	assert.Len(t, results, 2)

	// Criterion longer than listing tag.
	results = SearchRecords(props, Criteria{Neighborhood: "centro historico"})
	assert.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestSearchRecordsNeighborhoodIgnoresAccents(t *testing.T) {
	results := SearchRecords(sampleProperties(), Criteria{Neighborhood: "nueva cordoba"})
	assert.Len(t, results, 2)

	results = SearchRecords(sampleProperties(), Criteria{Neighborhood: "güemes"})
	require.Len(t, results, 1)
	assert.Equal(t, "prop_3", results[0].ID)
}

func TestSearchRecordsNumericBounds(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{"price max", Criteria{PriceMax: intPtr(95000)}, []string{"prop_1", "prop_3", "prop_4"}},
		{"price range", Criteria{PriceMin: intPtr(90000), PriceMax: intPtr(130000)}, []string{"prop_3", "prop_4", "prop_0"}},
		{"bedrooms exact", Criteria{BedroomsMin: intPtr(2), BedroomsMax: intPtr(2)}, []string{"prop_3", "prop_0"}},
		{"bathrooms min", Criteria{BathroomsMin: intPtr(2)}, []string{"prop_2"}},
		{"area min", Criteria{AreaMin: intPtr(100)}, []string{"prop_2"}},
		{"area max", Criteria{AreaMax: intPtr(50)}, []string{"prop_1", "prop_4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := SearchRecords(sampleProperties(), tt.criteria)
			ids := make([]string, len(results))
			for i, p := range results {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchRecordsPropertyType(t *testing.T) {
	results := SearchRecords(sampleProperties(), Criteria{PropertyType: "casa"})
	require.Len(t, results, 1)
	assert.Equal(t, "prop_2", results[0].ID)
}

func TestSearchRecordsDoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	SearchRecords(props, Criteria{})
	assert.Equal(t, "prop_0", props[0].ID)
	assert.Equal(t, "prop_2", props[2].ID)
}
