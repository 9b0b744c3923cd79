package catalog

import "github.com/Kingleseu/GestionStocke/pkg/enums"

// FacetAll is the wildcard sentinel for the free-form facets.
const FacetAll = "all"

// FilterState holds one active value per facet. Facets are single-select:
// a facet is either the wildcard or exactly one concrete value.
type FilterState struct {
	Category     string                   `json:"category"`
	Material     string                   `json:"material"`
	PriceBand    enums.PriceBand          `json:"price_band"`
	Customizable enums.CustomizableFilter `json:"customizable"`
}

// DefaultFilterState returns the all-wildcards state.
func DefaultFilterState() FilterState {
	return FilterState{
		Category:     FacetAll,
		Material:     FacetAll,
		PriceBand:    enums.PriceBandAll,
		Customizable: enums.CustomizableFilterAll,
	}
}

// Matches evaluates every active facet as an independent AND predicate.
func (f FilterState) Matches(p Product) bool {
	if f.Category != FacetAll && f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Material != FacetAll && f.Material != "" && p.Material != f.Material {
		return false
	}
	if !f.PriceBand.Contains(p.Price) {
		return false
	}
	return f.Customizable.Matches(p.Customizable)
}

// Filter returns the subsequence of products matching all active facets,
// preserving catalogue order.
func Filter(products []Product, state FilterState) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if state.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
