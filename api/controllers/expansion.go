package controllers

import (
	"net/http"

	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/internal/render"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

type expansionResponse struct {
	ExpandedProductID string `json:"expanded_product_id,omitempty"`
	Expanded          bool   `json:"expanded"`
}

func writeExpansionState(w http.ResponseWriter, session *storefront.Session) {
	id, open := session.ExpandedCard()
	resp := expansionResponse{Expanded: open}
	if open {
		resp.ExpandedProductID = id.String()
	}
	responses.WriteSuccess(w, resp)
}

// ToggleCard expands or collapses the product's card. Expanding another card
// closes the previous one first.
func ToggleCard(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := session.ToggleCard(productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeExpansionState(w, session)
	}
}

// CloseExpanded collapses whatever card is open. Safe to call at any time.
func CloseExpanded(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.CloseExpanded()
		writeExpansionState(w, session)
	}
}

type cardMarkupResponse struct {
	Markup   string `json:"markup"`
	Expanded bool   `json:"expanded"`
}

// ProductCard renders the canonical card markup for the product, expanded
// when the session has that card open.
func ProductCard(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := session.Product(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := session.Draft(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		expandedID, open := session.ExpandedCard()
		expanded := open && expandedID == productID

		markup, err := render.CardMarkup(product, draft, expanded)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render card"))
			return
		}

		responses.WriteSuccess(w, cardMarkupResponse{Markup: markup, Expanded: expanded})
	}
}
