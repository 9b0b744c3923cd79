package catalog

import "github.com/Kingleseu/GestionStocke/pkg/enums"

// View is the derived catalogue presentation: filtering always precedes
// sorting, and both counts are exposed for display.
type View struct {
	Products      []Product `json:"products"`
	TotalCount    int       `json:"total_count"`
	FilteredCount int       `json:"filtered_count"`
	// NoResults signals an active filter that matched nothing, as opposed
	// to an empty catalogue.
	NoResults bool `json:"no_results"`
}

// BuildView composes Sort(Filter(products)) and the display counts.
func BuildView(products []Product, filters FilterState, key enums.SortKey) View {
	filtered := Filter(products, filters)
	return View{
		Products:      Sort(filtered, key),
		TotalCount:    len(products),
		FilteredCount: len(filtered),
		NoResults:     len(filtered) == 0 && len(products) > 0,
	}
}
