package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findy-ai/property-engine/internal/dataset"
)

func testProperties() []dataset.Property {
	return []dataset.Property{
		{Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 47000, TotalArea: 50},
		{Neighborhood: "Nueva Córdoba", PropertyType: "Departamento", Price: 120000, TotalArea: 80},
		{Neighborhood: "Villa Allende", PropertyType: "Casa", Price: 675000, TotalArea: 200},
		{Neighborhood: "Centro", PropertyType: "PH", Price: 0, TotalArea: 0},
	}
}

func TestComputePriceAggregates(t *testing.T) {
	s := Compute(testProperties())

	assert.Equal(t, 4, s.TotalProperties)
	assert.Equal(t, 47000, s.PriceMin)
	assert.Equal(t, 675000, s.PriceMax)
	// The unpriced listing is excluded from the average.
	assert.Equal(t, (47000+120000+675000)/3, s.PriceAvg)
	assert.Equal(t, (50+80+200)/3, s.AvgTotalArea)
}

func TestComputeGroupings(t *testing.T) {
	s := Compute(testProperties())

	assert.Equal(t, []string{"Centro", "Nueva Córdoba", "Villa Allende"}, s.Neighborhoods)
	assert.Equal(t, []string{"Casa", "Departamento", "PH"}, s.PropertyTypes)
	assert.Equal(t, 2, s.ByNeighborhood["Nueva Córdoba"])
	assert.Equal(t, 1, s.ByPropertyType["Casa"])
}

func TestPriceRange(t *testing.T) {
	s := Compute(testProperties())
	assert.Equal(t, "$47K - $675K USD", s.PriceRange())

	empty := Compute(nil)
	assert.Equal(t, "sin datos de precio", empty.PriceRange())
}

func TestComputeEmptySnapshot(t *testing.T) {
	s := Compute(nil)
	assert.Zero(t, s.TotalProperties)
	assert.Zero(t, s.PriceAvg)
	assert.Empty(t, s.Neighborhoods)
}

func TestFilterNarrowsSnapshot(t *testing.T) {
	filtered := Filter(testProperties(), "departamento", "")
	assert.Len(t, filtered, 2)

	filtered = Filter(testProperties(), "", "nueva córdoba")
	assert.Len(t, filtered, 2)

	filtered = Filter(testProperties(), "casa", "villa allende")
	assert.Len(t, filtered, 1)

	// No restriction returns the snapshot untouched.
	assert.Len(t, Filter(testProperties(), "", ""), 4)
}

func TestSummaryMentionsCounts(t *testing.T) {
	s := Compute(testProperties())
	assert.Contains(t, s.Summary(), "4 propiedades")
	assert.Contains(t, s.Summary(), "3 barrios")
}
