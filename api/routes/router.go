package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kingleseu/GestionStocke/api/controllers"
	"github.com/Kingleseu/GestionStocke/api/middleware"
	"github.com/Kingleseu/GestionStocke/internal/cartmirror"
	"github.com/Kingleseu/GestionStocke/internal/content"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
)

// NewRouter wires the storefront HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	manager *storefront.Manager,
	contentStore *content.Store,
	mirrorService cartmirror.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalogue", func(r chi.Router) {
			r.Get("/", controllers.CatalogueView(manager, logg))
			r.Post("/reset", controllers.CatalogueReset(manager, logg))
		})

		r.Route("/products/{productID}", func(r chi.Router) {
			r.Get("/card", controllers.ProductCard(manager, logg))
			r.Post("/toggle", controllers.ToggleCard(manager, logg))
			r.Get("/customization", controllers.GetDraft(manager, logg))
			r.Put("/customization", controllers.UpdateCustomization(manager, logg))
			r.Post("/customization/quantity", controllers.AdjustDraftQuantity(manager, logg))
		})

		r.Post("/expansion/close", controllers.CloseExpanded(manager, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(manager, logg))
			r.Post("/items", controllers.AddToCart(manager, logg))
			r.Delete("/items/{itemID}", controllers.RemoveFromCart(manager, logg))
			r.Patch("/items/{itemID}", controllers.UpdateCartQuantity(manager, logg))
			r.Post("/checkout", controllers.Checkout(manager, logg))
		})

		if mirrorService != nil {
			r.Post("/sync/cart", controllers.SyncCart(mirrorService, logg))
		}

		r.Route("/content", func(r chi.Router) {
			r.Get("/", controllers.GetSiteContent(contentStore, logg))
			r.Put("/hero", controllers.UpdateHero(contentStore, logg))
			r.Put("/hero-grid/{index}", controllers.UpdateHeroCard(contentStore, logg))
			r.Put("/about", controllers.UpdateAbout(contentStore, logg))
			r.Post("/reset", controllers.ResetSiteContent(contentStore, logg))
		})
	})

	return r
}
