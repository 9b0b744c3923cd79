package catalog

import (
	"sort"

	"github.com/Kingleseu/GestionStocke/pkg/enums"
)

// Sort returns a sorted copy of products. The input is never reordered.
// The default key treats the incoming catalogue order as newest-first and
// preserves it verbatim; price keys sort stably, so equal-priced products
// keep their relative input order.
func Sort(products []Product, key enums.SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}

	return sorted
}
