package restaurants

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/restaurant/application"
)

// Handler wires restaurant, dish and roulette endpoints to application services.
type Handler struct {
	restaurants    application.RestaurantService
	dishes         application.DishService
	roulette       application.RouletteService
	location       *time.Location
	requestTimeout time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Restaurants    application.RestaurantService
	Dishes         application.DishService
	Roulette       application.RouletteService
	Location       *time.Location
	RequestTimeout time.Duration
}

// NewHandler constructs the handler set. Location defaults to UTC.
func NewHandler(cfg Config) *Handler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = common.RequestTimeout
	}
	return &Handler{
		restaurants:    cfg.Restaurants,
		dishes:         cfg.Dishes,
		roulette:       cfg.Roulette,
		location:       location,
		requestTimeout: timeout,
	}
}

// Register mounts all routes onto the router. writeLimit wraps every mutating route; nil disables it.
func (h *Handler) Register(r chi.Router, writeLimit func(http.Handler) http.Handler) {
	if writeLimit == nil {
		writeLimit = func(next http.Handler) http.Handler { return next }
	}

	r.Get("/taxonomy", h.taxonomyHandler())

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.restaurantListHandler())
		r.Get("/options", h.restaurantOptionsHandler())
		r.With(writeLimit).Post("/", h.restaurantCreateHandler())

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.restaurantDetailHandler())
			r.With(writeLimit).Patch("/", h.restaurantUpdateHandler())
			r.With(writeLimit).Delete("/", h.restaurantDeleteHandler())
			r.With(writeLimit).Post("/toggle-status", h.restaurantToggleHandler())
			r.Get("/dishes", h.restaurantDishesHandler())
			r.With(writeLimit).Post("/dishes", h.restaurantDishCreateHandler())
		})
	})

	r.Get("/dishes", h.dishListHandler())
	r.With(writeLimit).Post("/dishes", h.dishCreateHandler())

	r.Get("/roulette/pools", h.roulettePoolsHandler())
	r.With(writeLimit).Post("/roulette/spin", h.rouletteSpinHandler())
}

func (h *Handler) taxonomyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, taxonomyResponse{
			CuisineTypes:  common.CuisineTypes,
			SuggestedTags: common.SuggestedTags,
		})
	}
}
