package finder

import "strings"

// modificationCues signal that a message refines a previous search instead of
// starting a new one.
var modificationCues = []string{
	"cambiar", "cambia", "quitar", "quita", "sacar", "saca",
	"sin", "agregar", "agrega", "pero", "ahora", "mejor", "en lugar de",
}

// criteriaRemovals map "sin X" phrases to the field they clear. They are
// checked before overlaying, so "sin precio" drops an inherited budget even
// when the new message adds nothing in its place.
var criteriaRemovals = []struct {
	tokens []string
	clear  func(*Criteria)
}{
	{[]string{"sin departamento", "sin casa", "sin ph"}, func(c *Criteria) { c.PropertyType = "" }},
	{[]string{"sin barrio", "sin zona"}, func(c *Criteria) { c.Neighborhood = "" }},
	{[]string{"sin precio", "sin presupuesto"}, func(c *Criteria) {
		c.PriceMin = nil
		c.PriceMax = nil
	}},
}

// IsModification reports whether a message reads as a refinement of an
// ongoing search rather than a fresh query.
func IsModification(message string) bool {
	q := canonicalize(message)
	for _, cue := range modificationCues {
		if strings.Contains(q, cue) {
			return true
		}
	}
	return false
}

// ApplyModification merges a refinement message into previously established
// criteria: fields the new message mentions replace the old ones, fields it
// is silent about carry over, and explicit "sin X" phrases clear their field.
func ApplyModification(previous Criteria, message string) Criteria {
	patch := Extract(message)
	merged := previous.Overlay(patch)

	q := canonicalize(message)
	for _, removal := range criteriaRemovals {
		for _, tok := range removal.tokens {
			if strings.Contains(q, tok) {
				removal.clear(&merged)
				break
			}
		}
	}
	return merged
}
