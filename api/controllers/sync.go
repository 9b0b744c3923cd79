package controllers

import (
	"net/http"

	"github.com/Kingleseu/GestionStocke/api/middleware"
	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/api/validators"
	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/cartmirror"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

const csrfHeader = "X-CSRFToken"

type syncCartRequest struct {
	Cart []cart.LineItem `json:"cart"`
}

// SyncCart is the replace-whole-cart receiver the debounced bridge posts to.
// The mirror is best-effort storage, never the authoritative cart.
func SyncCart(svc cartmirror.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionID(r.Context())

		var payload syncCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.Sync(r.Context(), sessionID, r.Header.Get(csrfHeader), payload.Cart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "synced"})
	}
}
