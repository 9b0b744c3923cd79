package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kingleseu/GestionStocke/api/responses"
	"github.com/Kingleseu/GestionStocke/api/validators"
	"github.com/Kingleseu/GestionStocke/internal/content"
	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

// GetSiteContent returns the current marketing copy document.
func GetSiteContent(store *content.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Get())
	}
}

type heroRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// UpdateHero replaces the hero banner copy.
func UpdateHero(store *content.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload heroRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateHero(content.Hero{
			Title:    payload.Title,
			Subtitle: payload.Subtitle,
			Image:    payload.Image,
		})
		responses.WriteSuccess(w, store.Get())
	}
}

type heroCardRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// UpdateHeroCard replaces one hero grid card.
func UpdateHeroCard(store *content.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid card index"))
			return
		}

		var payload heroCardRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = store.UpdateHeroCard(index, content.HeroCard{
			Title:    payload.Title,
			Subtitle: payload.Subtitle,
			Image:    payload.Image,
			Category: payload.Category,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Get())
	}
}

type aboutRequest struct {
	Title      string         `json:"title" validate:"required"`
	Paragraph1 string         `json:"paragraph1"`
	Paragraph2 string         `json:"paragraph2"`
	Stats      []content.Stat `json:"stats" validate:"max=3,dive"`
	Image      string         `json:"image"`
}

// UpdateAbout replaces the about section.
func UpdateAbout(store *content.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload aboutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateAbout(content.About{
			Title:      payload.Title,
			Paragraph1: payload.Paragraph1,
			Paragraph2: payload.Paragraph2,
			Stats:      payload.Stats,
			Image:      payload.Image,
		})
		responses.WriteSuccess(w, store.Get())
	}
}

// ResetSiteContent restores the structural defaults.
func ResetSiteContent(store *content.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Reset(r.Context())
		responses.WriteSuccess(w, store.Get())
	}
}
