package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/api/validators"
	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

type cartResponse struct {
	Items   []cart.LineItem `json:"items"`
	Summary cart.Summary    `json:"summary"`
	Badge   int             `json:"badge"`
}

func writeCart(w http.ResponseWriter, session *storefront.Session) {
	responses.WriteSuccess(w, cartResponse{
		Items:   session.CartItems(),
		Summary: session.CartSummary(),
		Badge:   session.CartBadge(),
	})
}

func lineItemIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "itemID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line item id")
	}
	return id, nil
}

// GetCart returns the cart content with its derived summary.
func GetCart(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCart(w, session)
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// AddToCart moves the product's draft into the cart.
func AddToCart(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		item, err := session.AddToCart(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// RemoveFromCart deletes a line item. Unknown ids are a no-op.
func RemoveFromCart(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := lineItemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.RemoveFromCart(r.Context(), itemID)
		writeCart(w, session)
	}
}

type cartQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// UpdateCartQuantity adjusts a line item's quantity. Driving it to zero
// removes the item.
func UpdateCartQuantity(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := lineItemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.UpdateCartQuantity(r.Context(), itemID, payload.Delta)
		writeCart(w, session)
	}
}

// Checkout flushes the pending mirror write and returns the final summary.
func Checkout(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := resolveSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := session.Checkout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
