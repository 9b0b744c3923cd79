package controllers

import (
	"net/http"

	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

type catalogueViewResponse struct {
	Products      []catalog.Product   `json:"products"`
	TotalCount    int                 `json:"total_count"`
	FilteredCount int                 `json:"filtered_count"`
	NoResults     bool                `json:"no_results"`
	Filters       catalog.FilterState `json:"filters"`
	Sort          enums.SortKey       `json:"sort"`
}

// CatalogueView applies the query's filter and sort facets to the session and
// returns the derived view. Absent parameters leave the session's current
// facet values untouched.
func CatalogueView(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters, sortKey := session.Filters()
		query := r.URL.Query()

		if raw := query.Get("category"); raw != "" {
			filters.Category = raw
		}
		if raw := query.Get("material"); raw != "" {
			filters.Material = raw
		}
		if raw := query.Get("price_band"); raw != "" {
			band, err := enums.ParsePriceBand(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price band"))
				return
			}
			filters.PriceBand = band
		}
		if raw := query.Get("customizable"); raw != "" {
			flag, err := enums.ParseCustomizableFilter(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customizable filter"))
				return
			}
			filters.Customizable = flag
		}
		if raw := query.Get("sort"); raw != "" {
			key, err := enums.ParseSortKey(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
				return
			}
			sortKey = key
		}

		session.SetFilters(filters)
		session.SetSort(sortKey)

		writeCatalogueView(w, session)
	}
}

// CatalogueReset restores the wildcard filters and default sort.
func CatalogueReset(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.ResetFilters()
		writeCatalogueView(w, session)
	}
}

func writeCatalogueView(w http.ResponseWriter, session *storefront.Session) {
	view := session.VisibleProducts()
	filters, sortKey := session.Filters()
	responses.WriteSuccess(w, catalogueViewResponse{
		Products:      view.Products,
		TotalCount:    view.TotalCount,
		FilteredCount: view.FilteredCount,
		NoResults:     view.NoResults,
		Filters:       filters,
		Sort:          sortKey,
	})
}
