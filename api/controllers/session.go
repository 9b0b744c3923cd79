package controllers

import (
	"net/http"

	"github.com/Kingleseu/GestionStocke/api/middleware"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
)

// resolveSession looks up the request's storefront state. The session
// middleware guarantees an id on every route this is used from.
func resolveSession(r *http.Request, manager *storefront.Manager) (*storefront.Session, error) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return manager.Session(r.Context(), sessionID), nil
}
