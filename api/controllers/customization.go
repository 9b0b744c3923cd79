package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/api/validators"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

type updateCustomizationRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type draftResponse struct {
	Draft    customization.Draft `json:"draft"`
	Complete bool                `json:"complete"`
}

func productIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "productID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return id, nil
}

// GetDraft returns the product's current customization draft.
func GetDraft(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
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

		draft, err := session.Draft(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}

// UpdateCustomization overwrites a single draft field and reports whether
// the product is now addable.
func UpdateCustomization(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
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

		var payload updateCustomizationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field, err := customization.ParseField(payload.Field)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, complete, err := session.UpdateCustomization(productID, field, payload.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draftResponse{Draft: draft, Complete: complete})
	}
}

type draftQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustDraftQuantity applies a clamped delta to the draft quantity.
func AdjustDraftQuantity(manager *storefront.Manager, logg *logger.Logger) http.HandlerFunc {
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

		var payload draftQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := session.AdjustDraftQuantity(productID, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}
