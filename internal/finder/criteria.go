package finder

import (
	"fmt"
	"strings"
)

// Criteria is the structured representation of a user's filtering intent,
// derived from free text. All fields are optional; an unset field means no
// constraint on that dimension.
type Criteria struct {
	Neighborhood string `json:"neighborhood,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	PriceMin     *int   `json:"priceMin,omitempty"`
	PriceMax     *int   `json:"priceMax,omitempty"`
	BedroomsMin  *int   `json:"bedroomsMin,omitempty"`
	BedroomsMax  *int   `json:"bedroomsMax,omitempty"`
	BathroomsMin *int   `json:"bathroomsMin,omitempty"`
	AreaMin      *int   `json:"areaMin,omitempty"`
	AreaMax      *int   `json:"areaMax,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return c.Neighborhood == "" && c.PropertyType == "" &&
		c.PriceMin == nil && c.PriceMax == nil &&
		c.BedroomsMin == nil && c.BedroomsMax == nil &&
		c.BathroomsMin == nil &&
		c.AreaMin == nil && c.AreaMax == nil
}

// Overlay returns a copy of c with every field set in patch overwriting the
// corresponding field of c. Fields absent from patch survive unchanged.
func (c Criteria) Overlay(patch Criteria) Criteria {
	merged := c
	if patch.Neighborhood != "" {
		merged.Neighborhood = patch.Neighborhood
	}
	if patch.PropertyType != "" {
		merged.PropertyType = patch.PropertyType
	}
	if patch.PriceMin != nil {
		merged.PriceMin = patch.PriceMin
	}
	if patch.PriceMax != nil {
		merged.PriceMax = patch.PriceMax
	}
	if patch.BedroomsMin != nil {
		merged.BedroomsMin = patch.BedroomsMin
	}
	if patch.BedroomsMax != nil {
		merged.BedroomsMax = patch.BedroomsMax
	}
	if patch.BathroomsMin != nil {
		merged.BathroomsMin = patch.BathroomsMin
	}
	if patch.AreaMin != nil {
		merged.AreaMin = patch.AreaMin
	}
	if patch.AreaMax != nil {
		merged.AreaMax = patch.AreaMax
	}
	return merged
}

// String renders a compact single-line summary for logs.
func (c Criteria) String() string {
	var parts []string
	if c.Neighborhood != "" {
		parts = append(parts, "barrio="+c.Neighborhood)
	}
	if c.PropertyType != "" {
		parts = append(parts, "tipo="+c.PropertyType)
	}
	if c.PriceMin != nil {
		parts = append(parts, fmt.Sprintf("precioMin=%d", *c.PriceMin))
	}
	if c.PriceMax != nil {
		parts = append(parts, fmt.Sprintf("precioMax=%d", *c.PriceMax))
	}
	if c.BedroomsMin != nil {
		parts = append(parts, fmt.Sprintf("dormMin=%d", *c.BedroomsMin))
	}
	if c.BedroomsMax != nil {
		parts = append(parts, fmt.Sprintf("dormMax=%d", *c.BedroomsMax))
	}
	if c.BathroomsMin != nil {
		parts = append(parts, fmt.Sprintf("banosMin=%d", *c.BathroomsMin))
	}
	if c.AreaMin != nil {
		parts = append(parts, fmt.Sprintf("m2Min=%d", *c.AreaMin))
	}
	if c.AreaMax != nil {
		parts = append(parts, fmt.Sprintf("m2Max=%d", *c.AreaMax))
	}
	if len(parts) == 0 {
		return "sin filtros"
	}
	return strings.Join(parts, " ")
}

// intPtr is a small helper for building criteria values.
func intPtr(v int) *int { return &v }
