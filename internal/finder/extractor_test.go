package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNeighborhood(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"dictionary hit", "departamentos en nueva córdoba", "nueva córdoba"},
		{"accent variants fold", "depto en Güemes", "güemes"},
		{"no accents in query", "casa en cordoba capital, barrio guemes", "güemes"},
		{"pattern with split words", "algo en cerro   de las   rosas", "cerro de las rosas"},
		{"longest name wins over substring", "casas en villa carlos paz", "villa carlos paz"},
		{"no neighborhood", "departamento de 2 dormitorios", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Extract(tt.query)
			assert.Equal(t, tt.expected, c.Neighborhood)
		})
	}
}

func TestExtractPropertyType(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"busco un departamento", "departamento"},
		{"depto en el centro", "departamento"},
		{"casa con patio", "casa"},
		{"un ph luminoso", "ph"},
		{"duplex a estrenar", "ph"},
		{"algo barato", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c := Extract(tt.query)
			assert.Equal(t, tt.expected, c.PropertyType)
		})
	}
}

func TestExtractBedrooms(t *testing.T) {
	t.Run("exact count sets both bounds", func(t *testing.T) {
		c := Extract("departamento de 3 dormitorios")
		require.NotNil(t, c.BedroomsMin)
		require.NotNil(t, c.BedroomsMax)
		assert.Equal(t, 3, *c.BedroomsMin)
		assert.Equal(t, 3, *c.BedroomsMax)
	})

	t.Run("hasta sets only max", func(t *testing.T) {
		c := Extract("hasta 3 dormitorios")
		assert.Nil(t, c.BedroomsMin)
		require.NotNil(t, c.BedroomsMax)
		assert.Equal(t, 3, *c.BedroomsMax)
	})

	t.Run("desde sets only min", func(t *testing.T) {
		c := Extract("desde 2 habitaciones")
		require.NotNil(t, c.BedroomsMin)
		assert.Nil(t, c.BedroomsMax)
		assert.Equal(t, 2, *c.BedroomsMin)
	})

	t.Run("range overrides single", func(t *testing.T) {
		c := Extract("de 2 a 4 dormitorios")
		require.NotNil(t, c.BedroomsMin)
		require.NotNil(t, c.BedroomsMax)
		assert.Equal(t, 2, *c.BedroomsMin)
		assert.Equal(t, 4, *c.BedroomsMax)
	})

	t.Run("ambientes counts as bedrooms", func(t *testing.T) {
		c := Extract("2 ambientes en alberdi")
		require.NotNil(t, c.BedroomsMin)
		assert.Equal(t, 2, *c.BedroomsMin)
	})
}

func TestExtractBathrooms(t *testing.T) {
	c := Extract("casa con 2 baños")
	require.NotNil(t, c.BathroomsMin)
	assert.Equal(t, 2, *c.BathroomsMin)

	c = Extract("casa con 1 bano")
	require.NotNil(t, c.BathroomsMin)
	assert.Equal(t, 1, *c.BathroomsMin)
}

func TestExtractArea(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMin *int
		wantMax *int
	}{
		{"range", "entre 80 y 120 m2", intPtr(80), intPtr(120)},
		{"desde", "desde 100 metros", intPtr(100), nil},
		{"hasta", "hasta 90 m2", nil, intPtr(90)},
		{"mas de", "mas de 150 metros", intPtr(150), nil},
		{"minimo", "minimo 70 m2", intPtr(70), nil},
		{"maximo", "maximo 200 m2", nil, intPtr(200)},
		{"totales", "120 m2 totales", intPtr(120), nil},
		{"bare value defaults to min", "departamento de 80 metros", intPtr(80), nil},
		{"inverted range is reordered", "entre 120 y 80 m2", intPtr(80), intPtr(120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Extract(tt.query)
			assert.Equal(t, tt.wantMin, c.AreaMin)
			assert.Equal(t, tt.wantMax, c.AreaMax)
		})
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMin *int
		wantMax *int
	}{
		{"hasta with dollar sign", "hasta $150,000", nil, intPtr(150000)},
		{"desde sets min", "desde $80,000", intPtr(80000), nil},
		{"single bare amount defaults to max", "presupuesto de 120000", nil, intPtr(120000)},
		{"k multiplier", "hasta 120k", nil, intPtr(120000)},
		{"mil multiplier", "presupuesto de 100 mil", nil, intPtr(100000)},
		{"range", "entre $80,000 y $120,000", intPtr(80000), intPtr(120000)},
		{"range with mil", "entre 80 y 120 mil", intPtr(80000), intPtr(120000)},
		{"no indicator means no price", "departamentos de 3 dormitorios", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Extract(tt.query)
			assert.Equal(t, tt.wantMin, c.PriceMin)
			assert.Equal(t, tt.wantMax, c.PriceMax)
		})
	}
}

func TestExtractAreaPriceMutualExclusion(t *testing.T) {
	// A meters mention disables price extraction entirely, even with a
	// price indicator in the query.
	c := Extract("departamento de 80 m2 con precio accesible")
	require.NotNil(t, c.AreaMin)
	assert.Equal(t, 80, *c.AreaMin)
	assert.Nil(t, c.PriceMin)
	assert.Nil(t, c.PriceMax)
}

func TestExtractIsIdempotent(t *testing.T) {
	queries := []string{
		"departamento de 2 dormitorios en nueva córdoba hasta $120,000",
		"casa en villa allende con 2 baños y mas de 150 metros",
		"",
		"!!! ???",
	}
	for _, q := range queries {
		first := Extract(q)
		second := Extract(q)
		assert.Equal(t, first, second, "query %q", q)
	}
}

func TestExtractCombinedQuery(t *testing.T) {
	c := Extract("departamento de 2 dormitorios en nueva córdoba hasta $120,000")
	assert.Equal(t, "nueva córdoba", c.Neighborhood)
	assert.Equal(t, "departamento", c.PropertyType)
	// "hasta" applies to every numeric field in the query, so the bedroom
	// count reads as a ceiling too.
	assert.Nil(t, c.BedroomsMin)
	require.NotNil(t, c.BedroomsMax)
	assert.Equal(t, 2, *c.BedroomsMax)
	require.NotNil(t, c.PriceMax)
	assert.Equal(t, 120000, *c.PriceMax)
}

func TestExtractEmptyAndGarbage(t *testing.T) {
	assert.True(t, Extract("").IsEmpty())
	assert.True(t, Extract("   ").IsEmpty())
	assert.True(t, Extract("qwerty asdf").IsEmpty())
}
